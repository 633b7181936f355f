// Package validator performs fast token-census checks that rule a board out
// before any search is spent on it. Passing checks does not guarantee
// solvability; failing any of them guarantees unsolvability.
package validator

import (
	"context"
	"fmt"

	"github.com/bzhhan/autoopus/internal/board"
	"github.com/bzhhan/autoopus/internal/domain"
)

type Census struct{}

func New() *Census { return &Census{} }

func (v *Census) Validate(ctx context.Context, b *board.Board) (bool, []string, error) {
	counts := map[domain.Classification]int{}
	for i := 0; i < b.Len(); i++ {
		c := b.Cell(i).Class
		if !c.IsSentinel() {
			counts[c]++
		}
	}
	problems := make([]string, 0, 4)

	// vitae and mors only pair with each other
	if counts[domain.Vitae] != counts[domain.Mors] {
		problems = append(problems, fmt.Sprintf("vitae/mors imbalance: %d vs %d",
			counts[domain.Vitae], counts[domain.Mors]))
	}

	// every metal below gold consumes exactly one quicksilver
	metalsBelowGold := 0
	for _, m := range domain.MetalOrder {
		if m == domain.Gold {
			continue
		}
		if counts[m] > 1 {
			problems = append(problems, fmt.Sprintf("duplicate metal %s: %d", m, counts[m]))
		}
		metalsBelowGold += counts[m]
	}
	if counts[domain.Gold] > 1 {
		problems = append(problems, fmt.Sprintf("duplicate metal GOLD: %d", counts[domain.Gold]))
	}
	if counts[domain.Quicksilver] != metalsBelowGold {
		problems = append(problems, fmt.Sprintf("quicksilver/metal imbalance: %d quicksilver for %d metals",
			counts[domain.Quicksilver], metalsBelowGold))
	}

	// each odd basic-element count needs a salt partner, and leftover salt
	// must pair off among itself
	oddBasics := 0
	for _, c := range []domain.Classification{domain.Fire, domain.Water, domain.Earth, domain.Air} {
		if counts[c]%2 == 1 {
			oddBasics++
		}
	}
	salt := counts[domain.Salt]
	if oddBasics > salt {
		problems = append(problems, fmt.Sprintf("%d basics unpairable: only %d salt on board", oddBasics, salt))
	} else if (salt-oddBasics)%2 == 1 {
		problems = append(problems, fmt.Sprintf("odd leftover salt: %d salt for %d odd basics", salt, oddBasics))
	}

	return len(problems) == 0, problems, nil
}
