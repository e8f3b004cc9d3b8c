package resolve

// rdGotItNeedle and rdSecretNeedle are the two Russian-Doom-specific
// literals that gate the fallback profile.
var (
	rdGotItNeedle  = []byte("YOU GOT IT")
	rdSecretNeedle = []byte("A SECRET IS REVEALED")
)

// rdGiveArtifactArgIndex and rdGiveArtifactLiteral parameterize the
// load-argument scan used to find give_artifact_entry: the cheat handler
// writes 0 into its third (0-based index 2) stack argument just before
// calling it.
const (
	rdGiveArtifactArgIndex = 2
	rdGiveArtifactLiteral  = 0
)

// tryRussianDoom implements the Russian-Doom fallback profile: reachable
// only when the ZDoom strings were absent. It chains the data-store,
// data-load, load-argument, and multiply-add scans in order.
func tryRussianDoom(img Image) (*ResolvedSymbols, bool) {
	if _, ok := findString(img, zdoomPrintfNeedle); ok {
		if _, ok := findString(img, zdoomCmdNeedle); ok {
			return nil, false
		}
	}

	gotIt, ok := findString(img, rdGotItNeedle)
	if !ok {
		return nil, false
	}
	secret, ok := findString(img, rdSecretNeedle)
	if !ok {
		return nil, false
	}

	loadEnglish, ok := findDataStore(img, gotIt)
	if !ok {
		return nil, false
	}
	cheatHandler, ok := findLoadFunc(img, loadEnglish)
	if !ok {
		return nil, false
	}
	giveArtifact, ok := findLoadArg(img, cheatHandler, rdGiveArtifactArgIndex, rdGiveArtifactLiteral)
	if !ok {
		return nil, false
	}

	loadEnglish2, ok := findDataStore(img, secret)
	if !ok {
		return nil, false
	}
	sector9, ok := findLoad(img, loadEnglish2)
	if !ok {
		return nil, false
	}
	consolePlayer, ok := findMulAdd(img, sector9)
	if !ok {
		return nil, false
	}

	return &ResolvedSymbols{
		GiveArtifactEntry: giveArtifact,
		ConsolePlayer:     consolePlayer,
	}, true
}
