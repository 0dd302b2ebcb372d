package controllers

import (
	"sync"
	"testing"
	"time"

	"Backend-CheckIn-Passport/src/services/snapshot"
	"Backend-CheckIn-Passport/src/testutil"

	"github.com/stretchr/testify/assert"
)

func TestRequestRefreshRunsInBackground(t *testing.T) {
	store := snapshot.NewStore(&testutil.StaticSource{}, time.Second)
	h := &Handler{Store: store}

	// เช็คอินถี่ ๆ ต้องไม่ทำให้ snapshot ค้างหรือ error
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.requestRefresh("checkin", "u1")
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return store.Current().Seq > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.LessOrEqual(t, store.Current().Seq, uint64(20))
}

func TestRequestRefreshWithoutStore(t *testing.T) {
	h := &Handler{}
	assert.NotPanics(t, func() { h.requestRefresh("checkin", "u1") })
}
