package notify

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/semperfinish/intake/internal/models"
)

// Channel is one notification sink: render the message and make exactly one
// delivery attempt.
type Channel interface {
	Name() models.Channel
	Deliver(ctx context.Context, msg *Message) error
}

// Dispatcher fans one message out to a fixed set of channels.
type Dispatcher struct {
	channels []Channel
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// Dispatch attempts every channel concurrently and waits for all of them to
// settle; one channel failing never cancels another's attempt. Outcomes are
// reported in channel order regardless of completion order.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) models.DispatchResult {
	outcomes := make([]models.DispatchOutcome, len(d.channels))

	var wg sync.WaitGroup
	for i, ch := range d.channels {
		wg.Add(1)
		go func(i int, ch Channel) {
			defer wg.Done()
			err := deliver(ctx, ch, msg)
			if err != nil {
				log.Printf("notify: %s delivery failed: %v", ch.Name(), err)
				outcomes[i] = models.DispatchOutcome{Channel: ch.Name(), Error: err.Error()}
				return
			}
			outcomes[i] = models.DispatchOutcome{Channel: ch.Name(), Success: true}
		}(i, ch)
	}
	wg.Wait()

	result := models.DispatchResult{OverallSuccess: true, Outcomes: outcomes}
	for _, o := range outcomes {
		if !o.Success {
			result.OverallSuccess = false
		}
	}
	return result
}

// deliver shields the dispatcher from a panicking adapter; a panic counts
// as that channel failing, not the whole process.
func deliver(ctx context.Context, ch Channel, msg *Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s channel panic: %v", ch.Name(), r)
		}
	}()
	return ch.Deliver(ctx, msg)
}
