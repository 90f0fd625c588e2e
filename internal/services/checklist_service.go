package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type ChecklistService struct {
	checklist *repositories.ChecklistRepository
	points    *PointsService
	badges    *BadgeService
}

func NewChecklistService(
	checklist *repositories.ChecklistRepository,
	points *PointsService,
	badges *BadgeService,
) *ChecklistService {
	return &ChecklistService{
		checklist: checklist,
		points:    points,
		badges:    badges,
	}
}

// Overview returns the catalog merged with the user's progress.
func (s *ChecklistService) Overview(ctx context.Context, userID string) (*dtos.ChecklistResponse, error) {
	items, err := s.checklist.Items(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.checklist.ProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	checked := make(map[string]bool, len(progress))
	awarded := 0
	for _, p := range progress {
		if p.Checked {
			checked[p.ItemID] = true
		}
		if p.PointsAwarded {
			awarded += constants.PointsPerChecklistItem
		}
	}

	resp := &dtos.ChecklistResponse{PointsAwarded: awarded}
	requiredChecked := 0
	for _, item := range items {
		isChecked := checked[item.ID]
		resp.Items = append(resp.Items, dtos.ChecklistItemView{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Required:    item.Required,
			Checked:     isChecked,
		})
		if isChecked {
			resp.CheckedCount++
		}
		if item.Required {
			resp.RequiredCount++
			if isChecked {
				requiredChecked++
			}
		}
	}
	resp.Complete = resp.RequiredCount > 0 && requiredChecked == resp.RequiredCount
	return resp, nil
}

// Toggle checks or unchecks one document. The first check of an item
// pays a small point award; the progress row survives unchecking, so
// toggling never pays twice. Completing every required document runs
// the checklist badge pass.
func (s *ChecklistService) Toggle(ctx context.Context, userID string, req *dtos.ChecklistToggleReq) (*dtos.ChecklistResponse, error) {
	item, err := s.checklist.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	progress, err := s.checklist.GetProgress(ctx, userID, item.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !req.Checked {
			// Unchecking an item never touched is a no-op.
			return s.Overview(ctx, userID)
		}
		progress = &gormModels.UserChecklistProgress{
			UserID:  userID,
			ItemID:  item.ID,
			Checked: true,
		}
		if err := s.checklist.Insert(ctx, progress); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		progress.Checked = req.Checked
		if err := s.checklist.Save(ctx, progress); err != nil {
			return nil, err
		}
	}

	if req.Checked && !progress.PointsAwarded {
		description := fmt.Sprintf("Checked off: %s", item.Title)
		if _, err := s.points.Award(ctx, userID, constants.PointsPerChecklistItem, constants.ActionChecklistItem, description); err != nil {
			return nil, err
		}
		progress.PointsAwarded = true
		if err := s.checklist.Save(ctx, progress); err != nil {
			return nil, err
		}
	}

	if req.Checked {
		if _, err := s.badges.CheckAndAward(ctx, userID, constants.TriggerChecklist); err != nil {
			logging.Error("Badge pass failed after checklist toggle", "user_id", userID, "error", err.Error())
		}
	}

	return s.Overview(ctx, userID)
}
