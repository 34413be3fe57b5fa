package tripsplit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Draft is the structured bill candidate pulled out of the extraction
// model's output. Every field is optional: the output is untrusted and its
// shape is never assumed.
type Draft struct {
	Payer     string
	Amount    *decimal.Decimal
	Currency  string
	Rate      *decimal.Decimal
	SplitType string
	Percents  map[string]Percent
}

// ParseDraft parses the raw extraction output into a Draft. Syntactically
// unusable output counts as a failed external call; missing fields do not,
// they are caught later by validation.
func ParseDraft(raw string) (Draft, error) {
	var jobj any
	if err := json.Unmarshal([]byte(stripFences(raw)), &jobj); err != nil {
		return Draft{}, fmt.Errorf("%w: unparsable extraction output: %v", ErrExternalCall, err)
	}

	var d Draft
	if s, ok := lookupString(jobj, "$.WhoPaid"); ok {
		d.Payer = s
	}
	if v, ok := lookupDecimal(jobj, "$.Amount"); ok {
		d.Amount = &v
	}
	if s, ok := lookupString(jobj, "$.Currency"); ok {
		d.Currency = s
	}
	if v, ok := lookupDecimal(jobj, "$.ConversionRate"); ok {
		d.Rate = &v
	}
	if s, ok := lookupString(jobj, "$.SplitType"); ok {
		d.SplitType = s
	}
	if details, ok := lookupObject(jobj, "$.SplitDetails"); ok {
		d.Percents = make(map[string]Percent, len(details))
		for name, v := range details {
			p, err := coercePercent(v)
			if err != nil {
				return Draft{}, fmt.Errorf("%w: split share for %q: %v", ErrExternalCall, name, err)
			}
			d.Percents[name] = p
		}
	}
	return d, nil
}

// composeDraft validates the draft against the trip and builds the
// candidate bill. Names are matched through NormalizeName only; there is no
// fuzzy matching.
func (t *Trip) composeDraft(d Draft) (Bill, error) {
	splitType := strings.ToLower(strings.TrimSpace(d.SplitType))
	percentage := false
	switch splitType {
	case "equal", "even":
	case "percentage":
		percentage = true
	default:
		return Bill{}, fmt.Errorf("split type %q: %w", d.SplitType, ErrDraftIncomplete)
	}

	var missing []string
	if strings.TrimSpace(d.Payer) == "" {
		missing = append(missing, "payer")
	}
	if d.Amount == nil {
		missing = append(missing, "amount")
	}
	if d.Currency == "" {
		missing = append(missing, "currency")
	}
	if d.Rate == nil {
		missing = append(missing, "conversion rate")
	}
	if percentage && len(d.Percents) == 0 {
		missing = append(missing, "split details")
	}
	if len(missing) > 0 {
		return Bill{}, fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), ErrDraftIncomplete)
	}
	if !d.Amount.IsPositive() || !d.Rate.IsPositive() {
		return Bill{}, fmt.Errorf("amount and conversion rate must be positive: %w", ErrInvalidInput)
	}

	payer, ok := t.Participant(d.Payer)
	if !ok {
		return Bill{}, fmt.Errorf("payer %q is %w", NormalizeName(d.Payer), ErrUnknownParticipant)
	}

	total := M(*d.Amount, d.Currency).MulRate(*d.Rate)

	var owed map[string]Money
	var err error
	if percentage {
		// Resolve every draft name to the participant name as entered,
		// collecting all offenders before failing.
		shares := make(map[string]Percent, len(d.Percents))
		var unknown []string
		for name, p := range d.Percents {
			friend, ok := t.Participant(name)
			if !ok {
				unknown = append(unknown, NormalizeName(name))
				continue
			}
			shares[friend] = shares[friend].Add(p)
		}
		if len(unknown) > 0 {
			return Bill{}, fmt.Errorf("%s: %w", strings.Join(sorted(unknown), ", "), ErrUnknownParticipant)
		}
		owed, err = PercentageSplit(total, shares)
	} else {
		owed, err = EvenSplit(total, t.Friends)
	}
	if err != nil {
		return Bill{}, err
	}

	return t.newBill(payer, *d.Amount, strings.TrimSpace(d.Currency), *d.Rate, owed), nil
}

// stripFences removes a markdown code fence the model may wrap its JSON in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// lookup pulls a value out of the decoded JSON. jsonpath is never clear
// about whether it returns a list of one answer or a single answer, so a
// one-element list is unwrapped first.
func lookup(jobj any, path string) (any, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, false
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, jval != nil
}

func lookupString(jobj any, path string) (string, bool) {
	jval, ok := lookup(jobj, path)
	if !ok {
		return "", false
	}
	switch v := jval.(type) {
	case string:
		return v, true
	case float64:
		return decimal.NewFromFloat(v).String(), true
	}
	return "", false
}

func lookupDecimal(jobj any, path string) (decimal.Decimal, bool) {
	jval, ok := lookup(jobj, path)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := coerceDecimal(jval)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func lookupObject(jobj any, path string) (map[string]any, bool) {
	jval, ok := lookup(jobj, path)
	if !ok {
		return nil, false
	}
	m, ok := jval.(map[string]any)
	return m, ok
}

func coerceDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case json.Number:
		return decimal.NewFromString(n.String())
	}
	return decimal.Decimal{}, fmt.Errorf("not a number: %v (%T)", v, v)
}

// coercePercent accepts a share either as a number or as a string with a
// trailing percent sign; both forms read as the same value.
func coercePercent(v any) (Percent, error) {
	if s, ok := v.(string); ok {
		return ParsePercent(s)
	}
	d, err := coerceDecimal(v)
	if err != nil {
		return Percent{}, err
	}
	return P(d), nil
}

func sorted(names []string) []string {
	sort.Strings(names)
	return names
}
