package relay

import (
	"context"
	"fmt"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/leadrelay/internal/metrics"
	"github.com/wellywell/leadrelay/internal/telegram"
	"github.com/wellywell/leadrelay/internal/types"
)

type Bot interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) (*telegram.Message, error)
	EditMessageText(ctx context.Context, req telegram.EditMessageTextRequest) error
	AnswerCallbackQuery(ctx context.Context, req telegram.AnswerCallbackQueryRequest) error
	GetUpdates(ctx context.Context, req telegram.GetUpdatesRequest) ([]telegram.Update, error)
}

type Database interface {
	UpdateOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error)
	UpdatePendingOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error)
}

type Options struct {
	AdminChatID int64
	// EnforceTerminalStates makes accepted/rejected final: later decisions
	// on the same order are ignored instead of overwriting the status.
	EnforceTerminalStates bool
	// PollTimeout is the getUpdates long-poll timeout in seconds.
	PollTimeout int
	// ErrorBackoff is the pause after a failed poll.
	ErrorBackoff time.Duration
}

// Decision is an operator pressing one of the two buttons.
type Decision struct {
	Action     types.Action
	OrderID    int
	Actor      string
	ChatID     int64
	MessageID  int
	CallbackID string
}

type Relay struct {
	database Database
	bot      Bot
	opts     Options
	inflight sync.WaitGroup
}

// NewRelay builds a relay. A nil bot or a zero admin chat id leaves the
// relay disabled: notifications fail with ErrNotConfigured and Run does
// not poll.
func NewRelay(database Database, bot Bot, opts Options) *Relay {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 30
	}
	if opts.ErrorBackoff <= 0 {
		opts.ErrorBackoff = 3 * time.Second
	}
	return &Relay{database: database, bot: bot, opts: opts}
}

func (r *Relay) Enabled() bool {
	return r.bot != nil && r.opts.AdminChatID != 0
}

// Notify sends the order summary with accept/reject buttons to the admin chat.
func (r *Relay) Notify(ctx context.Context, order types.Order) error {
	if !r.Enabled() {
		return &NotificationError{OrderID: order.ID, Op: "send", Err: ErrNotConfigured}
	}

	_, err := r.bot.SendMessage(ctx, telegram.SendMessageRequest{
		ChatID:      r.opts.AdminChatID,
		Text:        FormatOrderMessage(order),
		ParseMode:   telegram.ParseModeHTML,
		ReplyMarkup: DecisionKeyboard(order.ID),
	})
	if err != nil {
		return &NotificationError{OrderID: order.ID, Op: "send", Err: err}
	}
	return nil
}

// NotifyAsync sends the notification in the background. The returned
// channel yields the outcome once and is closed; callers are free to ignore it.
func (r *Relay) NotifyAsync(order types.Order) <-chan error {
	done := make(chan error, 1)

	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		defer close(done)

		err := r.Notify(context.Background(), order)
		r.report(order, err)
		done <- err
	}()

	return done
}

// Wait blocks until every notification started by NotifyAsync is finished.
func (r *Relay) Wait() {
	r.inflight.Wait()
}

func (r *Relay) report(order types.Order, err error) {
	if err == nil {
		metrics.NotificationsSentTotal.Inc()
		logger.Infof("Order #%d sent to admin chat", order.ID)
		return
	}
	metrics.NotificationsFailedTotal.Inc()
	logger.WithFields(logger.Fields{
		"order_id": order.ID,
	}).Errorf("Telegram error: %s", err.Error())
}

// OnAction applies an operator decision to the store and, when a row was
// changed, rewrites the original message to show who decided what.
// A decision for an unknown order only gets a toast back.
func (r *Relay) OnAction(ctx context.Context, d Decision) error {
	status, err := d.Action.Status()
	if err != nil {
		r.answer(ctx, d, "Unknown action")
		return err
	}

	var updated bool
	if r.opts.EnforceTerminalStates {
		updated, err = r.database.UpdatePendingOrderStatus(ctx, d.OrderID, status)
	} else {
		updated, err = r.database.UpdateOrderStatus(ctx, d.OrderID, status)
	}

	if err != nil {
		metrics.DecisionsTotal.WithLabelValues(string(d.Action), "error").Inc()
		r.answer(ctx, d, "")
		return fmt.Errorf("applying %s to order %d: %w", d.Action, d.OrderID, err)
	}

	if !updated {
		metrics.DecisionsTotal.WithLabelValues(string(d.Action), "ignored").Inc()
		logger.Warnf("Order #%d: %s by %s changed nothing", d.OrderID, d.Action, d.Actor)
		if r.opts.EnforceTerminalStates {
			r.answer(ctx, d, fmt.Sprintf("Order #%d not found or already decided", d.OrderID))
		} else {
			r.answer(ctx, d, fmt.Sprintf("Order #%d not found", d.OrderID))
		}
		return nil
	}

	metrics.DecisionsTotal.WithLabelValues(string(d.Action), "applied").Inc()
	logger.Infof("Order #%d %s by %s", d.OrderID, status, d.Actor)

	if r.bot != nil && d.MessageID != 0 {
		err = r.bot.EditMessageText(ctx, telegram.EditMessageTextRequest{
			ChatID:    d.ChatID,
			MessageID: d.MessageID,
			Text:      FormatDecisionMessage(d.OrderID, status, d.Actor),
		})
		if err != nil {
			metrics.NotificationsFailedTotal.Inc()
			logger.Error((&NotificationError{OrderID: d.OrderID, Op: "edit", Err: err}).Error())
		}
	}

	r.answer(ctx, d, "")
	return nil
}

func (r *Relay) answer(ctx context.Context, d Decision, text string) {
	if r.bot == nil || d.CallbackID == "" {
		return
	}
	err := r.bot.AnswerCallbackQuery(ctx, telegram.AnswerCallbackQueryRequest{
		CallbackQueryID: d.CallbackID,
		Text:            text,
	})
	if err != nil {
		logger.Warnf("Could not answer callback %s: %s", d.CallbackID, err.Error())
	}
}
