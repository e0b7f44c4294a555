package parser

import (
	"fmt"
	"regexp"
)

const guidRegexp = "^[A-Za-z0-9_-]+$"

// Parser ...
type Parser struct {
	guidRegexp *regexp.Regexp
}

// New ...
func New() (p *Parser, err error) {
	p = &Parser{}
	p.guidRegexp, err = regexp.Compile(guidRegexp)
	return
}

// GUID checks that guid of a template or document is safe to put into a path.
func (p *Parser) GUID(guid string) error {
	if !p.guidRegexp.MatchString(guid) {
		return fmt.Errorf("%w: %q", ErrInvalidGUID, guid)
	}
	return nil
}
