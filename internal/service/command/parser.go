package command

import (
	"regexp"
	"strings"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

const countryPrefix = "234"

var (
	separatorsRe  = regexp.MustCompile(consts.CommandSeparators)
	debitMainRe   = regexp.MustCompile(consts.DebitMainPattern)
	debitBonusRe  = regexp.MustCompile(consts.DebitBonusPattern)
	creditMainRe  = regexp.MustCompile(consts.CreditMainPattern)
	creditBonusRe = regexp.MustCompile(consts.CreditBonusPattern)
)

// Parse turns one free-text instruction line into a typed command. The only
// parse failure is a line with no subscriber identifier token; everything
// else degrades to absent amounts. Bonus amounts are scaled into counter
// units here; main amounts are held in the same internal unit but are sent
// to the platform unscaled, because bucket counters arrive pre-scaled from
// upstream while the main balance does not.
func Parse(raw string) (models.ParsedCommand, error) {
	normalized := strings.TrimSpace(separatorsRe.ReplaceAllString(raw, " "))
	if normalized == "" {
		return models.ParsedCommand{}, models.ErrorMalformedCommand
	}

	tokens := strings.Split(normalized, " ")
	msisdn := tokens[0]
	if !strings.HasPrefix(msisdn, countryPrefix) {
		msisdn = countryPrefix + msisdn
	}

	cmd := models.ParsedCommand{Msisdn: msisdn}
	cmd.DebitMain = extractAmount(debitMainRe, normalized)
	cmd.DebitBonus = extractAmount(debitBonusRe, normalized)
	cmd.CreditMain = extractAmount(creditMainRe, normalized)
	cmd.CreditBonus = extractAmount(creditBonusRe, normalized)
	return cmd, nil
}

func extractAmount(re *regexp.Regexp, text string) *models.Money {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	amount, err := models.ParseNaira(match[1])
	if err != nil {
		return nil
	}
	return &amount
}

// CountMarkers reports how many debit and credit markers the raw line
// carries. The engine dispatches on these counts before any parsing: a line
// with both kinds (or neither) runs no adjustment at all.
func CountMarkers(raw string) (debits, credits int) {
	return strings.Count(raw, "-"), strings.Count(raw, "+")
}
