package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/ryhoangf/iValuate/internal/store/mocks"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	sched, err := NewScheduler(eng, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_RunRollup_LogsFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListListedProductIDs(mock.Anything).Return(nil, assert.AnError).Once()

	sched, err := NewScheduler(newTestEngine(ms), time.Hour, quietLogger())
	require.NoError(t, err)

	sched.runRollup()
}
