package gamerpower

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/go_utils"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// Filter narrows a giveaways request. Zero values mean "no restriction".
type Filter struct {
	Platform string
	Type     string
	SortBy   string
}

var sortOrders = []string{"date", "value", "popularity"}

// typeSlugs maps the API's type parameter onto the type text carried by records.
var typeSlugs = map[string]string{
	"game": models.TypeFullGame,
	"loot": models.TypeDLCAndLoot,
	"beta": models.TypeEarlyAccess,
}

func (f Filter) Validate() error {
	if f.SortBy != "" && !go_utils.InArray(f.SortBy, sortOrders) {
		return fmt.Errorf("%w: sort-by %q, want one of %s", ErrFilter, f.SortBy, strings.Join(sortOrders, ", "))
	}
	return nil
}

func (f Filter) params() map[string]string {
	p := map[string]string{}
	if f.Platform != "" {
		p["platform"] = f.Platform
	}
	if f.Type != "" {
		p["type"] = f.Type
	}
	if f.SortBy != "" {
		p["sort-by"] = f.SortBy
	}
	return p
}

// Matches applies the filter locally, the way the remote endpoint would.
func (f Filter) Matches(r models.GiveawayRecord) bool {
	if f.Type != "" {
		want, ok := typeSlugs[strings.ToLower(f.Type)]
		if !ok {
			want = f.Type
		}
		if r.Type != want {
			return false
		}
	}
	if f.Platform != "" {
		want := Slug(f.Platform)
		if alias, ok := platformAliases[want]; ok {
			want = alias
		}
		found := false
		for _, p := range splitPlatforms(r.Platforms) {
			if Slug(p) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// platformAliases covers API platform slugs that differ from the slug of the display name.
var platformAliases = map[string]string{
	"ps4":            "playstation-4",
	"ps5":            "playstation-5",
	"xbox-series-xs": "xbox-series-x-s",
	"itchio":         "itch-io",
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns "Epic Games Store" into "epic-games-store".
func Slug(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	return strings.Trim(nonSlug.ReplaceAllString(s, "-"), "-")
}

func splitPlatforms(platforms string) []string {
	return strings.FieldsFunc(platforms, func(r rune) bool { return r == ',' || r == '/' })
}
