package db

import (
	"context"
	"testing"
)

func TestQuerierFrom_FallsBackWithoutTx(t *testing.T) {
	var fallback Querier
	if got := QuerierFrom(context.Background(), fallback); got != fallback {
		t.Errorf("QuerierFrom() = %v, want fallback", got)
	}
}
