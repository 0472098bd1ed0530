package rgbforth

import "strconv"

// feedToken dispatches a single token by its first-byte sigil (§4.5),
// appending compiled elements onto in.parseCurrent (opening/closing
// sequences as sigils direct). in.parseCurrent is never nil while a line
// is being fed; Interp.RunLine ensures that.
func (in *Interp) feedToken(tok string) {
	if tok == "" {
		return
	}
	if in.parsePendingSet && in.parsePending == "" {
		// a bare ':' takes the following token as the definition name
		in.parsePending = tok
		return
	}
	rest := tok[1:]
	switch tok[0] {
	case '[':
		in.parseCurrent = NewSequence(in.parseCurrent)
	case ']':
		in.parseCurrent = in.parseCurrent.Close(in.Alloc)
	case '@':
		in.parseCurrent.PushTail(in.Alloc.NewStr(rest))
		in.parseCurrent.PushTail(in.Alloc.NewNamedFunc("vget", primVget, nil))
	case '!':
		in.parseCurrent.PushTail(in.Alloc.NewStr(rest))
		in.parseCurrent.PushTail(in.Alloc.NewNamedFunc("def", primDef, nil))
	case '#':
		n, err := strconv.ParseInt(rest, 16, 64)
		if err != nil {
			n = 0
		}
		in.parseCurrent.PushTail(in.Alloc.NewInt(n))
	case '\'':
		in.parseCurrent.PushTail(in.Alloc.NewStr(rest))
	case ':':
		in.parsePending = rest
		in.parsePendingSet = true
		in.parseCurrent = NewSequence(in.parseCurrent)
	case ';':
		if in.parsePendingSet {
			in.parseCurrent = in.parseCurrent.Close(in.Alloc)
			in.parseCurrent.PushTail(in.Alloc.NewStr(in.parsePending))
			in.parseCurrent.PushTail(in.Alloc.NewNamedFunc("def", primDef, nil))
			in.parsePending = ""
			in.parsePendingSet = false
		}
	case '(':
		// stack-comment token: consumed for source readability only,
		// the rest of the line still tokenizes normally.
	default:
		in.feedWord(tok)
	}
}

// feedWord handles the "anything else" row of §4.5's sigil table: a
// dictionary lookup, falling back to numeric parsing.
func (in *Interp) feedWord(tok string) {
	if sym := in.Dict.FindSym(tok); sym != nil {
		if sym.Value.Tag == Seq {
			in.parseCurrent.PushTail(in.Alloc.NewNamedFunc(tok, primCall, sym.Value.seq))
		} else {
			in.parseCurrent.PushTail(in.Alloc.NewSym(sym))
		}
		return
	}
	if containsByte(tok, '.') {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			in.parseCurrent.PushTail(in.Alloc.NewInt(0))
			return
		}
		in.parseCurrent.PushTail(in.Alloc.NewFloat(f))
		return
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		n = 0
	}
	in.parseCurrent.PushTail(in.Alloc.NewInt(n))
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// tokenize splits a line on runs of ASCII spaces, matching strtok_r's
// behavior of skipping consecutive delimiters and never yielding an empty
// token.
func tokenize(line string) []string {
	var toks []string
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			toks = append(toks, line[start:i])
			start = -1
		}
	}
	return toks
}
