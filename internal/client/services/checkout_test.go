package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/client/repositories/transactions"
	"github.com/dmitrijs2005/ordercli/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactions struct {
	receipts []models.Receipt
	err      error
}

func (f *fakeTransactions) Append(_ context.Context, r models.Receipt) error {
	if f.err != nil {
		return f.err
	}
	f.receipts = append(f.receipts, r)
	return nil
}

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func clock() time.Time { return fixedNow }

func session(t *testing.T) *models.Session {
	t.Helper()
	s := models.NewSession("alice")
	s.Order.Put(models.Item{Name: "Pen", Quantity: 3, Price: decimal.RequireFromString("1.50")})
	s.Order.Put(models.Item{Name: "Book", Quantity: 2, Price: decimal.RequireFromString("9.99")})
	return s
}

func TestCheckout_EmptyOrder(t *testing.T) {
	f := &fakeTransactions{}
	svc := NewCheckoutService(f, clock)

	_, err := svc.Checkout(context.Background(), models.NewSession("alice"))
	require.ErrorIs(t, err, common.ErrEmptyOrder)
	assert.Empty(t, f.receipts)
}

func TestCheckout_Success(t *testing.T) {
	f := &fakeTransactions{}
	svc := NewCheckoutService(f, clock)
	s := session(t)
	before := s.Order.Items()

	r, err := svc.Checkout(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.Order.IsEmpty())
	require.Len(t, f.receipts, 1)
	assert.Equal(t, fixedNow, r.Date)
	assert.Equal(t, "alice", r.User)
	assert.Equal(t, before, r.Items)
	assert.Equal(t, "24.48", models.Money(r.Total()))
}

func TestCheckout_WriteFailureKeepsOrder(t *testing.T) {
	boom := errors.New("read-only fs")
	svc := NewCheckoutService(&fakeTransactions{err: boom}, clock)
	s := session(t)

	_, err := svc.Checkout(context.Background(), s)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, s.Order.Len())
}

func TestCheckout_FileLogScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	svc := NewCheckoutService(transactions.NewFileRepository(path), clock)
	s := session(t)

	require.NoError(t, s.Order.SetQuantity("Pen", 10))
	require.NoError(t, s.Order.Remove("Book"))

	_, err := svc.Checkout(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Order.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date: 2024-05-06 07:08:09\n"+
		"User: alice\n"+
		"Items:\n"+
		"- Pen: 10 x 1.50 = 15.00\n"+
		"Total Amount: 15.00\n"+
		"-----\n", string(data))

	s.Order.Put(models.Item{Name: "Cup", Quantity: 1, Price: decimal.RequireFromString("4")})
	_, err = svc.Checkout(context.Background(), s)
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), models.ReceiptSeparator+"\n"))
}

func TestNewCheckoutService_DefaultClock(t *testing.T) {
	f := &fakeTransactions{}
	svc := NewCheckoutService(f, nil)

	r, err := svc.Checkout(context.Background(), session(t))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), r.Date, time.Minute)
}
