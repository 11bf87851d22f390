package command

import (
	"context"
	"regexp"
)

type handler func(i *Interpreter, ctx context.Context, args []string) error

type rule struct {
	name    string
	pattern *regexp.Regexp
	handle  handler
}

// rules are tried in order against the trimmed line; the first match wins.
// Every pattern is anchored at both ends, so trailing garbage such as
// "<copy1>abc" or "<delete>x" matches nothing and is an unknown command.
var rules = []rule{
	{name: "copy", pattern: regexp.MustCompile(`^<copy(\d+)>([1-9]\d*)?$`), handle: (*Interpreter).copyHistory},
	{name: "send", pattern: regexp.MustCompile(`^<send(\d+)>(.+)$`), handle: (*Interpreter).sendText},
	{name: "reply", pattern: regexp.MustCompile(`^<reply>(.+)$`), handle: (*Interpreter).replyLatest},
	{name: "paste", pattern: regexp.MustCompile(`^<paste(\d+)>$`), handle: (*Interpreter).pasteNote},
	{name: "edit", pattern: regexp.MustCompile(`^<edit>(.+)$`), handle: (*Interpreter).editLast},
	{name: "delete", pattern: regexp.MustCompile(`^<delete>$`), handle: (*Interpreter).deleteLast},
}

// match returns the first rule matching line and its capture groups
// (without the full match).
func match(line string) (rule, []string, bool) {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(line); m != nil {
			return r, m[1:], true
		}
	}
	return rule{}, nil, false
}
