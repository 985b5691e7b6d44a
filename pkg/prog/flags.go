package prog

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps a flag.FlagSet with helpers for flags that take one of a
// fixed set of values.
type FlagSet struct {
	*flag.FlagSet
}

// ChoiceVar defines a flag whose value must be one of choices. The default
// value is the first choice.
func (fs *FlagSet) ChoiceVar(p *string, name string, choices []string, usage string) {
	*p = choices[0]
	fs.Var(&choice{p, choices}, name,
		fmt.Sprintf("%s (one of %s)", usage, strings.Join(choices, ", ")))
}

type choice struct {
	p       *string
	choices []string
}

func (c *choice) String() string {
	if c.p == nil {
		return ""
	}
	return *c.p
}

func (c *choice) Set(s string) error {
	for _, choice := range c.choices {
		if s == choice {
			*c.p = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
}
