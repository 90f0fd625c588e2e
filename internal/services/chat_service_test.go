package services

import (
	"context"
	"testing"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/models/dtos"
)

func TestChatMatchesKeywords(t *testing.T) {
	svc := NewChatService(common.NewCacheService(60, 30), nil)

	resp, err := svc.Respond(context.Background(), true, "s1", &dtos.ChatMessageReq{
		Message: "What does a deputy earn per year?",
	})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if resp.Topic != "salary" {
		t.Errorf("expected salary topic, got %s", resp.Topic)
	}
	if resp.Reply == "" || len(resp.QuickReplies) == 0 {
		t.Error("expected a reply with quick replies")
	}
}

func TestChatFallsBackOnUnknownMessage(t *testing.T) {
	svc := NewChatService(common.NewCacheService(60, 30), nil)

	resp, err := svc.Respond(context.Background(), true, "s2", &dtos.ChatMessageReq{
		Message: "zzzzz nothing matches this",
	})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if resp.Topic != chatFallback.Topic {
		t.Errorf("expected fallback topic, got %s", resp.Topic)
	}
}

func TestChatAnonymousGetsOneFreeQuestion(t *testing.T) {
	svc := NewChatService(common.NewCacheService(60, 30), nil)
	ctx := context.Background()

	first, err := svc.Respond(ctx, false, "visitor-1", &dtos.ChatMessageReq{Message: "what are the requirements"})
	if err != nil {
		t.Fatalf("first question: %v", err)
	}
	if first.RequiresAuth {
		t.Error("first question should be answered")
	}

	second, err := svc.Respond(ctx, false, "visitor-1", &dtos.ChatMessageReq{Message: "how about the academy"})
	if err != nil {
		t.Fatalf("second question: %v", err)
	}
	if !second.RequiresAuth {
		t.Error("second anonymous question should prompt registration")
	}

	// A different visitor still gets their free question.
	other, err := svc.Respond(ctx, false, "visitor-2", &dtos.ChatMessageReq{Message: "how about the academy"})
	if err != nil {
		t.Fatalf("other visitor: %v", err)
	}
	if other.RequiresAuth {
		t.Error("a fresh session should be answered")
	}
}

func TestChatAuthenticatedIsUnlimited(t *testing.T) {
	svc := NewChatService(common.NewCacheService(60, 30), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		resp, err := svc.Respond(ctx, true, "member-1", &dtos.ChatMessageReq{Message: "tell me about benefits"})
		if err != nil {
			t.Fatalf("Respond: %v", err)
		}
		if resp.RequiresAuth {
			t.Fatal("authenticated visitors are never gated")
		}
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := NewChatService(nil, nil)

	if _, err := svc.Respond(context.Background(), true, "s3", &dtos.ChatMessageReq{Message: "   "}); err == nil {
		t.Error("expected an error for an empty message")
	}
}
