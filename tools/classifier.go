package tools

import (
	"strings"

	"owusu1946/portfolio-chat/types"
)

// Predicate reports whether lower-cased input matches.
type Predicate func(text string) bool

// Exact matches the whole input. It exists for captions of suggestion
// buttons, which arrive verbatim.
func Exact(phrase string) Predicate {
	phrase = strings.ToLower(phrase)
	return func(text string) bool {
		return text == phrase
	}
}

// ContainsAny matches when any trigger substring occurs in the input.
func ContainsAny(triggers ...string) Predicate {
	lowered := make([]string, len(triggers))
	for i, t := range triggers {
		lowered[i] = strings.ToLower(t)
	}
	return func(text string) bool {
		for _, t := range lowered {
			if strings.Contains(text, t) {
				return true
			}
		}
		return false
	}
}

type Rule struct {
	Name   string
	Match  Predicate
	Action Action
}

// DefaultRules is evaluated top to bottom and the first match wins.
// Vocabularies overlap ("working on" vs "work", "hobby" vs "hobbies"), so
// the order is part of the behaviour: do not sort or regroup it.
var DefaultRules = []Rule{
	{Name: "contact-caption", Match: Exact("how can i contact you?"), Action: ActionContact},
	{Name: "fun-caption", Match: Exact("what's the craziest thing you've ever done? what are your hobbies?"), Action: ActionSports},
	{Name: "contact", Match: ContainsAny("contact", "reach you", "email", "phone", "get in touch"), Action: ActionContact},
	{Name: "projects", Match: ContainsAny("project", "working on", "portfolio", "showcase"), Action: ActionProjects},
	{Name: "presentation", Match: ContainsAny("who are you", "tell me about yourself", "introduction", "about you", "your background"), Action: ActionPresentation},
	{Name: "resume", Match: ContainsAny("resume", "cv", "experience", "qualification"), Action: ActionResume},
	{Name: "skills", Match: ContainsAny("skills", "abilities", "what can you do", "capable of", "expertise", "proficiency"), Action: ActionSkills},
	{Name: "sports", Match: ContainsAny("sport", "athletic", "hobby", "leisure", "physical activity", "mountain bike", "biking", "cycling"), Action: ActionSports},
	{Name: "internship", Match: ContainsAny("internship", "job", "hire", "work", "employment", "position", "opportunity"), Action: ActionInternship},
	{Name: "crazy", Match: ContainsAny("crazy", "wild", "fun fact", "interesting", "surprising", "unusual", "hobbies", "fun"), Action: ActionCrazy},
}

type Classifier struct {
	rules []Rule
}

// NewClassifier uses DefaultRules when no rules are given.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// match returns the first rule accepting text, or nil.
func (c *Classifier) match(text string) *Rule {
	text = strings.ToLower(text)
	if text == "" {
		return nil
	}
	for i := range c.rules {
		if c.rules[i].Match(text) {
			return &c.rules[i]
		}
	}
	return nil
}

// Classify returns the tool for text, or ActionNone.
func (c *Classifier) Classify(text string) Action {
	if r := c.match(text); r != nil {
		return r.Action
	}
	return ActionNone
}

// Explain returns the name of the rule that fired, or "" when none did.
func (c *Classifier) Explain(text string) string {
	if r := c.match(text); r != nil {
		return r.Name
	}
	return ""
}

// ClassifyLatest classifies the last message of a conversation. Assistant
// messages never select a tool.
func (c *Classifier) ClassifyLatest(messages []types.Message) Action {
	if len(messages) == 0 {
		return ActionNone
	}
	last := messages[len(messages)-1]
	if last.Role != types.RoleUser {
		return ActionNone
	}
	return c.Classify(last.Content)
}

// Names lists the actions reachable through the rules, in rule order and
// without duplicates.
func (c *Classifier) Names() []string {
	seen := make(map[Action]bool, len(c.rules))
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		if seen[r.Action] {
			continue
		}
		seen[r.Action] = true
		names = append(names, string(r.Action))
	}
	return names
}
