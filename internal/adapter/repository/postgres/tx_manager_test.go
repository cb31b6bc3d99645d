package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/matchedbet/internal/domain"
)

const markBetSettledSQL = "UPDATE bets SET settled = TRUE WHERE id = $1 AND settled = FALSE"

// settleInTx mirrors the settlement flow: begin, mark the bet settled,
// commit, with a deferred rollback that runs on every path.
func settleInTx(ctx context.Context, manager *TxManager, betID string) (settleErr, rollbackErr error) {
	tx, err := manager.Begin(ctx)
	if err != nil {
		return err, nil
	}
	defer func() { rollbackErr = tx.Rollback(ctx) }()

	if err := NewBetRepository(nil).MarkSettled(ctx, tx, betID); err != nil {
		return err, nil
	}
	return tx.Commit(ctx), nil
}

func TestTxManagerSettlement(t *testing.T) {
	connLost := errors.New("conn lost")

	tests := []struct {
		name        string
		expect      func(pgxmock.PgxPoolIface)
		wantErr     error
		wantRollErr error
	}{
		{
			name: "commit then deferred rollback",
			expect: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectBegin()
				pool.ExpectExec(regexp.QuoteMeta(markBetSettledSQL)).
					WithArgs("bet-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				pool.ExpectCommit()
				// pgx reports a closed transaction when rolling back after commit.
				pool.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
		},
		{
			name: "already settled rolls back",
			expect: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectBegin()
				pool.ExpectExec(regexp.QuoteMeta(markBetSettledSQL)).
					WithArgs("bet-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				pool.ExpectRollback()
			},
			wantErr: domain.ErrBetAlreadySettled,
		},
		{
			name: "rollback failure is reported",
			expect: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectBegin()
				pool.ExpectExec(regexp.QuoteMeta(markBetSettledSQL)).
					WithArgs("bet-1").
					WillReturnError(connLost)
				pool.ExpectRollback().WillReturnError(connLost)
			},
			wantErr:     connLost,
			wantRollErr: connLost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPool := newMockPool(t)
			tt.expect(mockPool)

			err, rollbackErr := settleInTx(context.Background(), newTxManagerWithPool(mockPool), "bet-1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected settle error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(rollbackErr, tt.wantRollErr) {
				t.Fatalf("expected rollback error %v, got %v", tt.wantRollErr, rollbackErr)
			}

			assertExpectations(t, mockPool)
		})
	}
}

func TestTxManagerBeginError(t *testing.T) {
	mockPool := newMockPool(t)
	beginErr := errors.New("too many connections")
	mockPool.ExpectBegin().WillReturnError(beginErr)

	err, rollbackErr := settleInTx(context.Background(), newTxManagerWithPool(mockPool), "bet-1")
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected begin error, got %v", err)
	}
	if rollbackErr != nil {
		t.Fatalf("expected no rollback without a transaction, got %v", rollbackErr)
	}

	assertExpectations(t, mockPool)
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
