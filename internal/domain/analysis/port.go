package analysis

import "context"

// Service port: apa pun yang bisa mengklasifikasi teks (stub, HTTP, LLM)
type Service interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

// Repository port (interface untuk persistence history)
type Repository interface {
	Save(ctx context.Context, r *Record) error
	Get(ctx context.Context, id RecordID) (*Record, error)
	Paginate(ctx context.Context, page, pageSize int) ([]*Record, error)
	Count(ctx context.Context) (int64, error)
}
