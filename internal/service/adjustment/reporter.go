package adjustment

import (
	"fmt"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

// Render composes the per-subscriber report line from the main and bonus
// outcomes. The separator appears only when both carry a message.
func Render(identifier string, mainOutcome, bonusOutcome models.AdjustmentOutcome) string {
	mainMsg := mainOutcome.Message
	bonusMsg := bonusOutcome.Message

	separator := ""
	if mainMsg != "" && bonusMsg != "" {
		separator = consts.ReportSeparator
	}
	return fmt.Sprintf("%s: %s%s%s", identifier, mainMsg, separator, bonusMsg)
}

// RenderNotOnIN is the report line for a subscriber whose account record is
// short of the expected field count, whatever the command asked for.
func RenderNotOnIN(msisdn string) string {
	return fmt.Sprintf("%s: %s", msisdn, consts.MsgNotOnIN)
}
