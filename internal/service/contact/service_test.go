package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_AcceptedThenListedInOrder(t *testing.T) {
	repo := newMockRepo(seedContacts()...)
	svc := NewService(repo, nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, domain.Submission{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"})
	require.NoError(t, err)
	require.True(t, res.Accepted())
	assert.NotEmpty(t, res.Contact.ID)

	list := svc.List(ctx)
	assert.Equal(t, []string{"Max Entiger", "Mike Jones", "Jenny Keys"}, names(list))
	assert.Equal(t, 3, svc.Count(ctx))
}

func TestCreate_RejectedDoesNotAppend(t *testing.T) {
	repo := newMockRepo(seedContacts()...)
	svc := NewService(repo, nil)

	res, err := svc.Create(context.Background(), domain.Submission{FirstName: "Jenny", LastName: "Keys", PhoneNumber: "123-456-7890"})
	require.NoError(t, err)
	require.False(t, res.Accepted())
	assert.Equal(t, []string{DuplicateMessage}, Messages(res.Errors))
	assert.Equal(t, 2, repo.Count())
}

func TestCreate_RepositoryFailure(t *testing.T) {
	repo := newMockRepo()
	repo.appendErr = errors.New("disk full")
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), domain.Submission{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCreate_CanceledContext(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, domain.Submission{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, svc.Count(context.Background()))
}

func TestCreate_ConcurrentDuplicatesAcceptedOnce(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			first := "Jenny"
			if i%2 == 1 {
				first = "JENNY"
			}
			res, err := svc.Create(context.Background(), domain.Submission{FirstName: first, LastName: "Keys", PhoneNumber: fmt.Sprintf("555-555-%04d", i)})
			if err == nil && res.Accepted() {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, repo.Count())
}

func TestCreate_RecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder("contacts", false)
	svc := NewService(newMockRepo(seedContacts()...), rec)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Submission{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Submission{FirstName: "", LastName: "", PhoneNumber: ""})
	require.NoError(t, err)

	families, err := rec.Registry().Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				got[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				got[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, got["contacts_submissions_total"])
	assert.Equal(t, 3.0, got["contacts_validation_errors_total"])
	assert.Equal(t, 3.0, got["contacts_stored"])
}
