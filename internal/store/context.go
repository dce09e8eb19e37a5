package store

import (
	"context"
	"errors"
)

// ErrNoProvider is the panic value when a store is read from a context that
// was never given one.
var ErrNoProvider = errors.New("store: no provider in context")

type ctxKey int

const (
	dataKey ctxKey = iota
	uiKey
)

func WithData(ctx context.Context, d *DataStore) context.Context {
	return context.WithValue(ctx, dataKey, d)
}

func WithUI(ctx context.Context, u *UIStore) context.Context {
	return context.WithValue(ctx, uiKey, u)
}

func DataFrom(ctx context.Context) (*DataStore, bool) {
	d, ok := ctx.Value(dataKey).(*DataStore)
	return d, ok && d != nil
}

func UIFrom(ctx context.Context) (*UIStore, bool) {
	u, ok := ctx.Value(uiKey).(*UIStore)
	return u, ok && u != nil
}

// Data returns the data store carried by ctx and panics with ErrNoProvider
// when there is none.
func Data(ctx context.Context) *DataStore {
	d, ok := DataFrom(ctx)
	if !ok {
		panic(ErrNoProvider)
	}
	return d
}

// UI returns the UI store carried by ctx and panics with ErrNoProvider when
// there is none.
func UI(ctx context.Context) *UIStore {
	u, ok := UIFrom(ctx)
	if !ok {
		panic(ErrNoProvider)
	}
	return u
}
