package printitems

// Signal is an abstract typographic event: a request for whitespace or a
// bookkeeping boundary (indent, group, force-no-newlines region) rather than
// literal text. The printer interprets signals against the writer's current
// position; plugins never compute columns themselves.
type Signal int

const (
	// SigNewLine emits a newline if newlines are currently allowed.
	SigNewLine Signal = iota
	// SigTab emits a tab and advances the column by the indent width.
	SigTab
	// SigPossibleNewLine marks the current location as a candidate restart
	// point that the printer may later convert into a forced newline.
	SigPossibleNewLine
	// SigSpaceOrNewLine marks a candidate restart point and writes a space
	// that the printer may later pop in favor of a forced newline.
	SigSpaceOrNewLine
	// SigExpectNewLine forces the next first-column write to be preceded by
	// a newline if it isn't already at column zero.
	SigExpectNewLine
	// SigQueueStartIndent queues one extra indent that takes effect at the
	// next write rather than immediately.
	SigQueueStartIndent
	// SigStartIndent increments the indent level.
	SigStartIndent
	// SigFinishIndent decrements the indent level (or cancels a queued
	// indent that hasn't been realized yet).
	SigFinishIndent
	// SigStartNewLineGroup increases new-line-group depth, lowering the
	// priority of possible-newline candidates created within it.
	SigStartNewLineGroup
	// SigFinishNewLineGroup decreases new-line-group depth.
	SigFinishNewLineGroup
	// SigSingleIndent emits exactly one indent unit unconditionally.
	SigSingleIndent
	// SigStartIgnoringIndent suppresses automatic leading indentation.
	SigStartIgnoringIndent
	// SigFinishIgnoringIndent restores automatic leading indentation.
	SigFinishIgnoringIndent
	// SigStartForceNoNewLines brackets a region where newline signals
	// become no-ops (or plain spaces, for SigSpaceOrNewLine).
	SigStartForceNoNewLines
	// SigFinishForceNoNewLines ends a force-no-newlines region.
	SigFinishForceNoNewLines
	// SigSpaceIfNotTrailing emits a space that a subsequent newline must
	// pop rather than leave as trailing whitespace.
	SigSpaceIfNotTrailing
)

var signalNames = [...]string{
	SigNewLine:                "NewLine",
	SigTab:                    "Tab",
	SigPossibleNewLine:        "PossibleNewLine",
	SigSpaceOrNewLine:         "SpaceOrNewLine",
	SigExpectNewLine:          "ExpectNewLine",
	SigQueueStartIndent:       "QueueStartIndent",
	SigStartIndent:            "StartIndent",
	SigFinishIndent:           "FinishIndent",
	SigStartNewLineGroup:      "StartNewLineGroup",
	SigFinishNewLineGroup:     "FinishNewLineGroup",
	SigSingleIndent:           "SingleIndent",
	SigStartIgnoringIndent:    "StartIgnoringIndent",
	SigFinishIgnoringIndent:   "FinishIgnoringIndent",
	SigStartForceNoNewLines:   "StartForceNoNewLines",
	SigFinishForceNoNewLines:  "FinishForceNoNewLines",
	SigSpaceIfNotTrailing:     "SpaceIfNotTrailing",
}

func (s Signal) String() string {
	if int(s) < 0 || int(s) >= len(signalNames) {
		return "ILLEGAL"
	}
	return signalNames[s]
}

func (Signal) printItem() {}
