// Package annotation reads the architecture tags (@module, @actor, @uses)
// embedded in a module docstring.
package annotation

import (
	"regexp"
	"strings"
)

// Component is the architectural unit a module declares.
type Component struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Actor is an external party the component interacts with.
type Actor struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Direction   string  `json:"direction"`
	Description *string `json:"description"`
}

// Relationship is a dependency on another component.
type Relationship struct {
	Target      string  `json:"target"`
	Description *string `json:"description"`
}

// Tags holds everything found in one module docstring. Actors and
// Relationships are never nil.
type Tags struct {
	Component     *Component
	Actors        []Actor
	Relationships []Relationship
}

// DirectionBoth is the direction of an actor declared without one.
const DirectionBoth = "both"

var (
	componentTags = []*regexp.Regexp{
		regexp.MustCompile(`@module\s+(\S+)`),
		regexp.MustCompile(`@component\s+(\S+)`),
		regexp.MustCompile(`@namespace\s+(\S+)`),
	}
	actorTag = regexp.MustCompile(`@actor\s+(\S+)\s+\{(Person|System)\}\s*(?:\{(in|out|both)\}\s*)?`)
	usesTag  = regexp.MustCompile(`@uses\s+(\S+)\s*`)
)

// Extract scans doc for tags. Malformed tags are skipped.
func Extract(doc string) Tags {
	return Tags{
		Component:     component(doc),
		Actors:        actors(doc),
		Relationships: relationships(doc),
	}
}

func component(doc string) *Component {
	if doc == "" {
		return nil
	}
	for _, re := range componentTags {
		m := re.FindStringSubmatch(doc)
		if m == nil {
			continue
		}
		text := doc
		if i := strings.IndexByte(doc, '@'); i >= 0 {
			text = doc[:i]
		}
		return &Component{Name: m[1], Description: optional(text)}
	}
	return nil
}

func actors(doc string) []Actor {
	out := []Actor{}
	for _, loc := range actorTag.FindAllStringSubmatchIndex(doc, -1) {
		direction := DirectionBoth
		if loc[6] >= 0 {
			direction = doc[loc[6]:loc[7]]
		}
		out = append(out, Actor{
			Name:        doc[loc[2]:loc[3]],
			Type:        doc[loc[4]:loc[5]],
			Direction:   direction,
			Description: optional(untilNextTag(doc, loc[1])),
		})
	}
	return out
}

func relationships(doc string) []Relationship {
	out := []Relationship{}
	for _, loc := range usesTag.FindAllStringSubmatchIndex(doc, -1) {
		out = append(out, Relationship{
			Target:      doc[loc[2]:loc[3]],
			Description: optional(untilNextTag(doc, loc[1])),
		})
	}
	return out
}

// untilNextTag returns the text from start up to the next '@' or the end.
func untilNextTag(doc string, start int) string {
	rest := doc[start:]
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
