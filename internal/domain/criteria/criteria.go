// Package criteria defines the validated extraction request parameters.
package criteria

import (
	"fmt"
	"strings"

	"github.com/lexica-cloud/wordrank/internal/domain"
)

// Result and rarity limits.
const (
	DefaultMaxResults = 100
	MaxMaxResults     = 500
	MinRarity         = 1
	MaxRarity         = 5
)

// Criteria is a validated word extraction request. Zero values for
// optional parameters mean "not constrained".
type Criteria struct {
	fields      []string
	minLength   int
	maxLength   int
	firstLetter byte
	posTag      string
	minRarity   int
	maxRarity   int
	brandMode   bool
	maxResults  int
}

// New validates and normalizes extraction parameters.
//
// fields is required and non-empty; tags are lowercased. minLength and
// maxLength of 0 disable the length constraint. firstLetter, if
// non-empty, must be a single ASCII letter. minRarity/maxRarity of 0
// disable the rarity post-filter. maxResults defaults to 100 and is
// clamped to 500.
//
// posTag is accepted and carried but applied nowhere in the pipeline;
// it is kept for request compatibility only.
func New(
	fields []string,
	minLength, maxLength int,
	firstLetter string,
	posTag string,
	minRarity, maxRarity int,
	brandMode bool,
	maxResults int,
) (Criteria, error) {
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		tag := strings.ToLower(strings.TrimSpace(f))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return Criteria{}, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidCriteria)
	}

	if minLength < 0 || maxLength < 0 {
		return Criteria{}, fmt.Errorf("%w: length range must be non-negative", domain.ErrInvalidCriteria)
	}
	if maxLength > 0 && minLength > maxLength {
		return Criteria{}, fmt.Errorf(
			"%w: length range [%d,%d] is inverted", domain.ErrInvalidCriteria, minLength, maxLength,
		)
	}

	var letter byte
	if firstLetter != "" {
		l := strings.ToLower(firstLetter)
		if len(l) != 1 || l[0] < 'a' || l[0] > 'z' {
			return Criteria{}, fmt.Errorf(
				"%w: firstLetter must be a single letter, got %q", domain.ErrInvalidCriteria, firstLetter,
			)
		}
		letter = l[0]
	}

	if minRarity != 0 || maxRarity != 0 {
		if minRarity < MinRarity || maxRarity > MaxRarity || minRarity > maxRarity {
			return Criteria{}, fmt.Errorf(
				"%w: rarity range [%d,%d] must lie within [%d,%d]",
				domain.ErrInvalidCriteria, minRarity, maxRarity, MinRarity, MaxRarity,
			)
		}
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > MaxMaxResults {
		maxResults = MaxMaxResults
	}

	return Criteria{
		fields:      tags,
		minLength:   minLength,
		maxLength:   maxLength,
		firstLetter: letter,
		posTag:      posTag,
		minRarity:   minRarity,
		maxRarity:   maxRarity,
		brandMode:   brandMode,
		maxResults:  maxResults,
	}, nil
}

// Fields returns the requested field tags.
func (c *Criteria) Fields() []string { return c.fields }

// MinLength returns the inclusive lower length bound (0 = unset).
func (c *Criteria) MinLength() int { return c.minLength }

// MaxLength returns the inclusive upper length bound (0 = unset).
func (c *Criteria) MaxLength() int { return c.maxLength }

// HasLengthRange reports whether a length constraint was given.
func (c *Criteria) HasLengthRange() bool { return c.minLength > 0 || c.maxLength > 0 }

// FirstLetter returns the required first letter (0 = unset).
func (c *Criteria) FirstLetter() byte { return c.firstLetter }

// POSTag returns the accepted-but-unused part-of-speech tag.
func (c *Criteria) POSTag() string { return c.posTag }

// MinRarity returns the inclusive lower rarity bound (0 = unset).
func (c *Criteria) MinRarity() int { return c.minRarity }

// MaxRarity returns the inclusive upper rarity bound (0 = unset).
func (c *Criteria) MaxRarity() int { return c.maxRarity }

// HasRarityRange reports whether a rarity post-filter was given.
func (c *Criteria) HasRarityRange() bool { return c.minRarity > 0 || c.maxRarity > 0 }

// BrandMode reports whether negative-association words are excluded.
func (c *Criteria) BrandMode() bool { return c.brandMode }

// MaxResults returns the maximum number of results to return.
func (c *Criteria) MaxResults() int { return c.maxResults }
