package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
)

// NoticeService handles condominium notices.
type NoticeService struct {
	noticeRepo   *repositories.NoticeRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(
	noticeRepo *repositories.NoticeRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *NoticeService {
	return &NoticeService{
		noticeRepo:   noticeRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Create posts a notice to a condominium. Only administrators of the
// condominium may post.
func (s *NoticeService) Create(ctx context.Context, authorID, condominiumID int64, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if err := s.authzService.ValidateCondominiumAdmin(ctx, authorID, condominiumID); err != nil {
		return nil, err
	}

	notice := &models.Notice{
		Title:         req.Title,
		Message:       req.Message,
		AuthorID:      authorID,
		CondominiumID: condominiumID,
		Date:          time.Now().UTC(),
	}

	id, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		return nil, err
	}
	notice.ID = id

	s.logger.Info().Int64("noticeID", id).Int64("condominiumID", condominiumID).Msg("Notice posted")

	resp := mapNoticeResponse(notice)
	return &resp, nil
}

// GetByCondominium lists a condominium's notices for its members.
func (s *NoticeService) GetByCondominium(ctx context.Context, userID, condominiumID int64) ([]dto.NoticeResponse, error) {
	if err := s.authzService.ValidateActiveMember(ctx, userID, condominiumID); err != nil {
		return nil, err
	}

	notices, err := s.noticeRepo.GetByCondominiumID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, mapNoticeResponse(n))
	}
	return responses, nil
}

func mapNoticeResponse(n *models.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:            n.ID,
		Title:         n.Title,
		Message:       n.Message,
		CondominiumID: n.CondominiumID,
		Date:          n.Date,
		Author:        mapUserBasic(n.Author),
	}
}
