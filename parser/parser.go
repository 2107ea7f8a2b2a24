package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spachava753/addressbook/commands"
)

var (
	basicCommandFormat = regexp.MustCompile(`^(?P<word>\S+)(?P<arguments>.*)$`)

	personDataArgsFormat = regexp.MustCompile(
		`^(?P<name>[^/]+)` +
			` (?P<phonePrivate>p?)p/(?P<phone>[^/]+)` +
			` (?P<emailPrivate>p?)e/(?P<email>[^/]+)` +
			` (?P<addressPrivate>p?)a/(?P<address>[^/]+?)` +
			`(?P<tags>(?: t/[^/\s]+)*)$`,
	)
	editArgsFormat   = regexp.MustCompile(`^(?P<index>\S+)\s+(?P<type>[^/\s]+)/(?P<value>.+)$`)
	altArgsFormat    = regexp.MustCompile(`^(?P<index>\S+)\s+(?P<private>p?)(?P<category>[^/\s])/(?P<type>[^/]+)/(?P<value>.+)$`)
	tagArgsFormat    = regexp.MustCompile(`^(?P<index>\S+)(?P<tags>(?:\s+t/[^/\s]+)*)$`)
	shareArgsFormat  = regexp.MustCompile(`^(?P<index>\S+)\s+(?P<to>\S+)$`)
	keywordsFormat   = regexp.MustCompile(`^\S+(?:\s+\S+)*$`)
	singleArgFormat  = regexp.MustCompile(`^\S+$`)
	tagPrefixPattern = regexp.MustCompile(`t/`)
)

// Parse maps one line of user input to a command. Input that does not match
// any command form yields a commands.Incorrect carrying the usage to show.
//
// Example:
//
//	cmd := parser.Parse("edit 2 p/90000000")
//	res := session.Execute(ctx, cmd)
//	fmt.Println(res.Message)
func Parse(input string) commands.Command {
	m := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return incorrect(commands.HelpUsage)
	}
	word := m[basicCommandFormat.SubexpIndex("word")]
	args := strings.TrimSpace(m[basicCommandFormat.SubexpIndex("arguments")])

	switch word {
	case commands.AddWord:
		return parseAdd(args)
	case commands.EditWord:
		return parseEdit(args)
	case commands.AltWord:
		return parseAlt(args)
	case commands.TagWord:
		return parseTag(args)
	case commands.DeleteWord:
		return parseIndexed(args, commands.DeleteUsage, func(i int) commands.Command {
			return commands.Delete{Index: i}
		})
	case commands.ViewWord:
		return parseIndexed(args, commands.ViewUsage, func(i int) commands.Command {
			return commands.View{Index: i}
		})
	case commands.ViewAllWord:
		return parseIndexed(args, commands.ViewAllUsage, func(i int) commands.Command {
			return commands.ViewAll{Index: i}
		})
	case commands.FindWord:
		if !keywordsFormat.MatchString(args) {
			return incorrect(commands.FindUsage)
		}
		return commands.Find{Keywords: strings.Fields(args)}
	case commands.FindByNumberWord:
		if !singleArgFormat.MatchString(args) {
			return incorrect(commands.FindByNumberUsage)
		}
		return commands.FindByNumber{Query: args}
	case commands.ShareWord:
		return parseShare(args)
	case commands.ListWord:
		return commands.List{}
	case commands.ClearWord:
		return commands.Clear{}
	case commands.BackupWord:
		return commands.Backup{}
	case commands.ExitWord:
		return commands.Exit{}
	default:
		// help and unknown words both show the usage list.
		return commands.Help{}
	}
}

func incorrect(usage string) commands.Incorrect {
	return commands.Incorrect{Feedback: fmt.Sprintf(commands.MessageInvalidCommandFormat, usage)}
}

func group(re *regexp.Regexp, m []string, name string) string {
	return m[re.SubexpIndex(name)]
}

func parseAdd(args string) commands.Command {
	m := personDataArgsFormat.FindStringSubmatch(args)
	if m == nil {
		return incorrect(commands.AddUsage)
	}
	g := func(name string) string { return group(personDataArgsFormat, m, name) }
	return commands.Add{
		Name:           strings.TrimSpace(g("name")),
		Phone:          g("phone"),
		PhonePrivate:   g("phonePrivate") != "",
		Email:          g("email"),
		EmailPrivate:   g("emailPrivate") != "",
		Address:        g("address"),
		AddressPrivate: g("addressPrivate") != "",
		Tags:           splitTags(g("tags")),
	}
}

// splitTags turns " t/a t/b" into ["a", "b"].
func splitTags(raw string) []string {
	var tags []string
	for _, part := range tagPrefixPattern.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

func parseEdit(args string) commands.Command {
	m := editArgsFormat.FindStringSubmatch(args)
	if m == nil {
		return incorrect(commands.EditUsage)
	}
	index, err := strconv.Atoi(group(editArgsFormat, m, "index"))
	if err != nil {
		return incorrect(commands.EditUsage)
	}
	return commands.Edit{
		Index:       index,
		ContactType: group(editArgsFormat, m, "type"),
		Value:       group(editArgsFormat, m, "value"),
	}
}

func parseAlt(args string) commands.Command {
	m := altArgsFormat.FindStringSubmatch(args)
	if m == nil {
		return incorrect(commands.AltUsage)
	}
	index, err := strconv.Atoi(group(altArgsFormat, m, "index"))
	if err != nil {
		return incorrect(commands.AltUsage)
	}
	return commands.Alt{
		Index:    index,
		Category: group(altArgsFormat, m, "category"),
		Type:     strings.TrimSpace(group(altArgsFormat, m, "type")),
		Value:    group(altArgsFormat, m, "value"),
		Private:  group(altArgsFormat, m, "private") != "",
	}
}

func parseTag(args string) commands.Command {
	m := tagArgsFormat.FindStringSubmatch(args)
	if m == nil {
		return incorrect(commands.TagUsage)
	}
	index, err := strconv.Atoi(group(tagArgsFormat, m, "index"))
	if err != nil {
		return incorrect(commands.TagUsage)
	}
	return commands.Tag{Index: index, Tags: splitTags(group(tagArgsFormat, m, "tags"))}
}

func parseShare(args string) commands.Command {
	m := shareArgsFormat.FindStringSubmatch(args)
	if m == nil {
		return incorrect(commands.ShareUsage)
	}
	index, err := strconv.Atoi(group(shareArgsFormat, m, "index"))
	if err != nil {
		return incorrect(commands.ShareUsage)
	}
	return commands.Share{Index: index, To: group(shareArgsFormat, m, "to")}
}

func parseIndexed(args, usage string, build func(int) commands.Command) commands.Command {
	if !singleArgFormat.MatchString(args) {
		return incorrect(usage)
	}
	index, err := strconv.Atoi(args)
	if err != nil {
		return incorrect(usage)
	}
	return build(index)
}
