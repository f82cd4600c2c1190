package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/phishproof/internal/application"
	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

// Service implements use-cases untuk analisa teks
// Service is designed to be used concurrently and is thread-safe
type Service struct {
	Classifier domain.Service
	Repo       domain.Repository // optional; nil berarti history tidak disimpan
	Clock      application.Clock
	Backend    string
}

//
// ==== USE CASES ====
//

// Command untuk analisa satu teks
type AnalyzeCommand struct {
	Client string
	Text   string
}

// Analyze jalankan classifier → simpan record (kalau repo ada) → balikin verdict
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (domain.Result, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return domain.Result{}, domain.ErrValidation
	}

	res, err := s.Classifier.Analyze(ctx, cmd.Text)
	if err != nil {
		return domain.Result{}, err
	}

	if s.Repo == nil {
		return res, nil
	}

	rec := &domain.Record{
		ID:         domain.RecordID(uuid.New().String()),
		Client:     cmd.Client,
		Text:       cmd.Text,
		IsScam:     res.IsScam,
		Type:       res.Type,
		Confidence: res.Confidence,
		Backend:    s.Backend,
		CreatedAt:  s.now(),
	}
	// verdict tetap dikembalikan walaupun history gagal disimpan
	if err := s.Repo.Save(ctx, rec); err != nil {
		log.Printf("history save failed id=%s err=%v", rec.ID, err)
	}
	return res, nil
}

// Get ambil 1 record by id
func (s *Service) Get(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	if s.Repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.Repo.Get(ctx, id)
}

// List ambil satu halaman history
func (s *Service) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResult, error) {
	if s.Repo == nil {
		return nil, ErrHistoryDisabled
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	data, err := s.Repo.Paginate(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("paginate history: %w", err)
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if data == nil {
		data = []*domain.Record{}
	}
	return &domain.PaginatedResult{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
