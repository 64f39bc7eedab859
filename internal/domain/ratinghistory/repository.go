package ratinghistory

import "context"

type Repository interface {
	Append(ctx context.Context, records []Record) error
	ListByPlayer(ctx context.Context, normalizedName string) ([]Record, error)
}
