// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import "github.com/seqlabs/strand"

// AlignedEnds is the configuration element marking which sequence ends
// may align against gaps free of charge. Leaving a flag false keeps the
// corresponding end penalized as usual.
type AlignedEnds struct {
	FirstLeading   bool
	FirstTrailing  bool
	SecondLeading  bool
	SecondTrailing bool
}

// Kind implements the [strand.Element] interface.
func (AlignedEnds) Kind() strand.Kind { return KindAlignedEnds }

// FreeEnds is the AlignedEnds value leaving every sequence end free,
// turning a global alignment into an overlap alignment.
var FreeEnds = AlignedEnds{
	FirstLeading:   true,
	FirstTrailing:  true,
	SecondLeading:  true,
	SecondTrailing: true,
}
