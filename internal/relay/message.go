package relay

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/wellywell/leadrelay/internal/telegram"
	"github.com/wellywell/leadrelay/internal/types"
)

var callbackPattern = regexp.MustCompile(`^(accept|reject)_(\d+)$`)

func FormatOrderMessage(order types.Order) string {
	details := order.Details
	if details == "" {
		details = "N/A"
	}

	var b strings.Builder
	b.WriteString("🔥 <b>NEW LEAD DETECTED</b>\n\n")
	fmt.Fprintf(&b, "🆔 <b>ID:</b> #%d\n", order.ID)
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", html.EscapeString(order.Name))
	fmt.Fprintf(&b, "📞 <b>Contact:</b> %s\n", html.EscapeString(order.Contact))
	fmt.Fprintf(&b, "📝 <b>Details:</b> %s", html.EscapeString(details))
	return b.String()
}

func FormatDecisionMessage(orderID int, status types.Status, actor string) string {
	if status == types.AcceptedStatus {
		return fmt.Sprintf("✅ Order #%d ACCEPTED by %s", orderID, actor)
	}
	return fmt.Sprintf("❌ Order #%d REJECTED by %s", orderID, actor)
}

func DecisionKeyboard(orderID int) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "✅ Take Project", CallbackData: CallbackData(types.AcceptAction, orderID)},
			{Text: "❌ Reject", CallbackData: CallbackData(types.RejectAction, orderID)},
		}},
	}
}

func CallbackData(action types.Action, orderID int) string {
	return fmt.Sprintf("%s_%d", action, orderID)
}

// ParseCallbackData is the inverse of CallbackData.
func ParseCallbackData(data string) (types.Action, int, error) {
	match := callbackPattern.FindStringSubmatch(data)
	if match == nil {
		return "", 0, fmt.Errorf("unrecognised callback data %q", data)
	}
	orderID, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, fmt.Errorf("bad order id in callback data %q: %w", data, err)
	}
	return types.Action(match[1]), orderID, nil
}

// ActorName picks what the edited message shows as the decision maker.
func ActorName(u telegram.User) string {
	switch {
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return "@" + u.Username
	default:
		return strconv.FormatInt(u.ID, 10)
	}
}
