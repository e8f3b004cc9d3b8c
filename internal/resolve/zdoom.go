package resolve

// zdoomPrintfNeedle is the format string ZDoom's script-error printf call
// formats, used to locate the host's formatted-print entry.
var zdoomPrintfNeedle = []byte("\034GScript error, \"%s\" line %d:")

// zdoomCmdNeedle is a literal unique to ZDoom's console-command dispatcher.
var zdoomCmdNeedle = []byte("toggle idmypos")

// tryZDoom implements the ZDoom profile, the preferred of the two: both
// reference strings must be present in read-only memory, and the
// printf-hook site and console-command entry are each resolved from the
// call site that references the matching string.
func tryZDoom(img Image) (*ResolvedSymbols, bool) {
	printfStr, ok := findString(img, zdoomPrintfNeedle)
	if !ok {
		return nil, false
	}
	cmdStr, ok := findString(img, zdoomCmdNeedle)
	if !ok {
		return nil, false
	}

	printfSite, _, ok := findCodeRef(img, printfStr)
	if !ok {
		return nil, false
	}

	cmdEntry, abi, ok := findCodeRef(img, cmdStr)
	if !ok {
		return nil, false
	}

	return &ResolvedSymbols{
		PrintfHookSite:      printfSite,
		ConsoleCommandEntry: cmdEntry,
		ConsoleCommandABI:   abi,
	}, true
}
