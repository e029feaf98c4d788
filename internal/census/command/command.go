// Package command turns raw program arguments into a census command.
package command

import "strings"

// Kind tags the requested operation.
type Kind string

const (
	KindSearchAnimals         Kind = "search-animals"
	KindCountPeopleAndAnimals Kind = "count-people-and-animals"
)

const (
	filterFlag = "--filter="
	countFlag  = "--count"
)

// Command is a parsed request. Pattern is only meaningful for
// KindSearchAnimals and is passed through untrimmed; validation belongs to
// the search use case.
type Command struct {
	Kind    Kind
	Pattern string
}

// Parse inspects the first argument only:
//
//	--filter=<pattern>  search; pattern is the text between the first and
//	                    second "=" ("--filter=a=b" searches for "a")
//	--count             count
//
// Anything else, including no arguments, yields ok == false, even when a
// later argument would have been recognised.
func Parse(args []string) (cmd Command, ok bool) {
	if len(args) == 0 {
		return Command{}, false
	}
	arg := args[0]
	switch {
	case strings.HasPrefix(arg, filterFlag):
		pattern := strings.SplitN(arg, "=", 3)[1]
		return Command{Kind: KindSearchAnimals, Pattern: pattern}, true
	case arg == countFlag:
		return Command{Kind: KindCountPeopleAndAnimals}, true
	default:
		return Command{}, false
	}
}
