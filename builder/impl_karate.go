// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_karate.go - Zachary's karate club social network.
//
// Contract:
//   • 34 vertices cfg.idFn(0..33), 78 undirected edges in a fixed order.
//   • Every vertex carries ClubLabel set to ClubMrHi or ClubOfficer, the
//     faction each member joined after the club split.
//
// The graph is connected and small enough to score exhaustively, so it is the
// standard fixture for conformity runs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// Karate club attribute label and its two values.
const (
	ClubLabel   = "club"
	ClubMrHi    = "Mr. Hi"
	ClubOfficer = "Officer"
)

// KarateClubSize is the member count of the karate club network.
const KarateClubSize = 34

// karateEdges lists the 78 friendships as (lower, higher) member indices.
var karateEdges = [...][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8},
	{0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

// mrHiMembers are the members that sided with the instructor.
var mrHiMembers = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true,
	10: true, 11: true, 12: true, 13: true, 16: true, 17: true, 19: true, 21: true,
}

// KarateClub returns a Constructor that builds Zachary's karate club with the
// ClubLabel attribute on every member.
func KarateClub() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < KarateClubSize; i++ {
			club := ClubOfficer
			if mrHiMembers[i] {
				club = ClubMrHi
			}
			id := cfg.idFn(i)
			if err := g.AddVertexWithAttributes(id, core.Attributes{ClubLabel: club}); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodKarateClub, id, err)
			}
		}

		var u, v string
		for _, e := range karateEdges {
			u, v = cfg.idFn(e[0]), cfg.idFn(e[1])
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodKarateClub, u, v, err)
			}
		}

		return nil
	}
}
