package relay

import (
	"context"
	"errors"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/leadrelay/internal/telegram"
)

// Run consumes operator callbacks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	if !r.Enabled() {
		logger.Warn("Telegram relay disabled, not polling for callbacks")
		<-ctx.Done()
		return
	}
	logger.Info("Telegram relay started")
	r.HandleUpdates(ctx, PollUpdates(ctx, r.bot, r.opts.PollTimeout, r.opts.ErrorBackoff))
	logger.Info("Telegram relay stopped")
}

// PollUpdates long-polls getUpdates and feeds callback queries into the
// returned channel. The channel is closed when ctx is done.
func PollUpdates(ctx context.Context, bot Bot, timeout int, backoff time.Duration) <-chan telegram.Update {

	updates := make(chan telegram.Update)

	go func(ctx context.Context) {
		defer close(updates)

		offset := 0
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			batch, err := bot.GetUpdates(ctx, telegram.GetUpdatesRequest{
				Offset:         offset,
				Timeout:        timeout,
				AllowedUpdates: []string{telegram.UpdateCallbackQuery},
			})
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					return
				}
				wait := backoff
				if retry, ok := telegram.IsThrottle(err); ok {
					logger.Warningf("Telegram too many requests, will retry in %s", retry)
					wait = retry
				} else {
					logger.Errorf("Polling updates failed: %s", err.Error())
				}
				if !sleep(ctx, wait) {
					return
				}
				continue
			}

			for _, update := range batch {
				if update.UpdateID >= offset {
					offset = update.UpdateID + 1
				}
				select {
				case updates <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}(ctx)

	return updates
}

// HandleUpdates turns callback queries into decisions, one at a time.
func (r *Relay) HandleUpdates(ctx context.Context, updates <-chan telegram.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.CallbackQuery == nil {
				continue
			}
			r.handleCallback(ctx, update.CallbackQuery)
		}
	}
}

func (r *Relay) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	d := Decision{
		Actor:      ActorName(cb.From),
		CallbackID: cb.ID,
	}
	if cb.Message != nil {
		d.ChatID = cb.Message.Chat.ID
		d.MessageID = cb.Message.MessageID
	}

	action, orderID, err := ParseCallbackData(cb.Data)
	if err != nil {
		logger.Warn(err.Error())
		r.answer(ctx, d, "Unknown action")
		return
	}
	d.Action = action
	d.OrderID = orderID

	if err := r.OnAction(ctx, d); err != nil {
		logger.Error(err.Error())
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
