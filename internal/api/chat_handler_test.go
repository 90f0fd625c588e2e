package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/models/dtos"
	"summit-sheriff/recruiting/internal/services"
)

func newChatHandlers() *Handlers {
	deps := &Dependencies{
		Services: &Services{
			Chat: services.NewChatService(common.NewCacheService(60, 30), nil),
		},
	}
	return NewHandlers(deps)
}

func TestChatMessageHandler_Success(t *testing.T) {
	handler := newChatHandlers().ChatMessage()

	bodyBytes, _ := json.Marshal(dtos.ChatMessageReq{Message: "what is the salary"})
	req := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Chat-Session", "visitor-abc")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
}

func TestChatMessageHandler_SecondAnonymousQuestionGated(t *testing.T) {
	handler := newChatHandlers().ChatMessage()

	send := func(wantStatus int) dtos.APIResponse {
		bodyBytes, _ := json.Marshal(dtos.ChatMessageReq{Message: "tell me about benefits"})
		req := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Chat-Session", "visitor-gated")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != wantStatus {
			t.Fatalf("Expected status %d, got %d", wantStatus, rr.Code)
		}

		var response dtos.APIResponse
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return response
	}

	send(http.StatusOK)
	second := send(http.StatusUnauthorized)

	data, _ := json.Marshal(second.Data)
	var chat dtos.ChatMessageResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		t.Fatalf("Failed to decode chat payload: %v", err)
	}
	if !chat.RequiresAuth {
		t.Error("Expected the second anonymous question to prompt registration")
	}
}

func TestChatMessageHandler_AuthenticatedNotGated(t *testing.T) {
	handler := newChatHandlers().ChatMessage()

	claims := &auth.SessionClaims{UserUUID: "user-1", DisplayVal: "Member"}

	for i := 0; i < 2; i++ {
		bodyBytes, _ := json.Marshal(dtos.ChatMessageReq{Message: "how long is the academy"})
		req := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Chat-Session", "member-session")
		req = req.WithContext(auth.SetUserClaims(req.Context(), claims))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var response dtos.APIResponse
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		data, _ := json.Marshal(response.Data)
		var chat dtos.ChatMessageResponse
		if err := json.Unmarshal(data, &chat); err != nil {
			t.Fatalf("Failed to decode chat payload: %v", err)
		}
		if chat.RequiresAuth {
			t.Error("Authenticated visitors must not be gated")
		}
	}
}

func TestChatMessageHandler_InvalidJSON(t *testing.T) {
	handler := newChatHandlers().ChatMessage()

	req := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetUserPointsHandler_MissingClaims(t *testing.T) {
	handler := NewHandlers(&Dependencies{Services: &Services{}}).GetUserPoints()

	req := httptest.NewRequest("GET", "/api/v1/user/points", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}
