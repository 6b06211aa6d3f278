// Package sampledata bundles demo draw history so the dashboard can be tried
// without a real results file. The text flows through the same batch parser
// as an uploaded file.
package sampledata

// swertres3D is a run of 3-digit results, oldest first
const swertres3D = `4-6-2
1-9-5
3-3-8
7-0-2
5-1-9
2-8-4
9-6-1
0-4-7
6-2-3
8-5-0
1-7-9
3-0-6
5-9-2
7-4-8
2-1-5
4-8-0
9-3-7
6-5-1
0-2-4
8-7-3
1-4-6
5-0-9
3-6-2
7-9-5
2-3-8
4-1-0
9-8-6
6-0-2
0-5-7
8-2-1`

var samples = map[string]string{
	"3d": swertres3D,
}

// ForGame returns the bundled sample text for a game, if one ships
func ForGame(gameID string) (string, bool) {
	text, ok := samples[gameID]
	return text, ok
}
