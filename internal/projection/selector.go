package projection

import (
	"fmt"
	"slices"
	"strings"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"golang.org/x/text/cases"
)

// SelectorKind tags a ChannelSelector variant.
type SelectorKind string

const (
	SelectByCategory SelectorKind = "category"
	SelectByNamePart SelectorKind = "name"
	SelectExplicit   SelectorKind = "explicit"
)

// ChannelSelector picks a set of channels. Exactly one variant is set,
// identified by Kind.
type ChannelSelector struct {
	Kind SelectorKind `json:"kind"`

	// CategoryID selects every channel in one category.
	CategoryID int64 `json:"category_id,string,omitempty"`

	// NamePart selects channels whose category name contains it, ignoring case.
	NamePart string `json:"name_part,omitempty"`

	// ChannelIDs selects channels directly. Ids unknown to the directory are dropped.
	ChannelIDs v1.IDs `json:"channel_ids,omitempty"`
}

func ByCategory(id int64) ChannelSelector {
	return ChannelSelector{Kind: SelectByCategory, CategoryID: id}
}

func ByNamePart(text string) ChannelSelector {
	return ChannelSelector{Kind: SelectByNamePart, NamePart: text}
}

func Explicit(ids ...int64) ChannelSelector {
	return ChannelSelector{Kind: SelectExplicit, ChannelIDs: v1.IDs(ids)}
}

// Validate checks the variant is well formed.
func (s ChannelSelector) Validate() error {
	switch s.Kind {
	case SelectByCategory:
		if s.CategoryID <= 0 {
			return malformedf("category selector needs a positive category_id")
		}
	case SelectByNamePart:
		if strings.TrimSpace(s.NamePart) == "" {
			return malformedf("name selector needs a non-empty name_part")
		}
	case SelectExplicit:
		if len(s.ChannelIDs) == 0 {
			return malformedf("explicit selector needs channel_ids")
		}
	default:
		return malformedf("unknown selector kind %q", s.Kind)
	}
	return nil
}

// Resolve returns the matching channels in directory order.
func (s ChannelSelector) Resolve(channels []platform.Channel) []platform.Channel {
	var keep func(platform.Channel) bool
	switch s.Kind {
	case SelectByCategory:
		keep = func(c platform.Channel) bool { return c.CategoryID == s.CategoryID }
	case SelectByNamePart:
		fold := cases.Fold()
		part := fold.String(strings.TrimSpace(s.NamePart))
		keep = func(c platform.Channel) bool {
			return c.Category != "" && strings.Contains(fold.String(c.Category), part)
		}
	case SelectExplicit:
		keep = func(c platform.Channel) bool { return slices.Contains(s.ChannelIDs, c.ID) }
	default:
		return nil
	}

	out := make([]platform.Channel, 0)
	for _, c := range channels {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ChannelSelector) String() string {
	switch s.Kind {
	case SelectByCategory:
		return fmt.Sprintf("category:%d", s.CategoryID)
	case SelectByNamePart:
		return "name:" + s.NamePart
	default:
		return fmt.Sprintf("explicit:%v", s.ChannelIDs)
	}
}
