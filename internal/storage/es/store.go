package es

import "context"

type Store struct {
	*Reader
	*Writer
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	reader, err := NewReader(config)
	if err != nil {
		return nil, err
	}
	writer, err := NewWriter(ctx, config)
	if err != nil {
		return nil, err
	}
	return &Store{Reader: reader, Writer: writer}, nil
}
