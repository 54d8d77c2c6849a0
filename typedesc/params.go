package typedesc

import (
	"bufio"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/errors"
)

// Param is a documented parameter: its name and its type description verbatim.
type Param struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// ParseParameters reads a compact parameter listing, one "name : type" entry per line:
//
//	a : int
//	b : int | float
//	    indented lines describe the previous entry and are skipped
//	d :
//
// Blank lines are ignored. A line without a colon declares an untyped parameter.
func ParseParameters(listing string) ([]Param, error) {
	var params []Param
	sc := bufio.NewScanner(strings.NewReader(listing))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		name, typ, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errorc.With(errors.ErrInvalidDescription, errorc.String(errors.ErrorFieldDescription, line))
		}
		params = append(params, Param{Name: name, Type: strings.TrimSpace(typ)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return params, nil
}
