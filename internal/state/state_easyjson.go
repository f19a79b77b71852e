// ABOUTME: easyjson codecs for the state file record; hand-maintained, not produced by easyjson
// ABOUTME: Do not regenerate: string slots holding other kinds must read as empty, not fail

package state

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MarshalEasyJSON writes r as {"pair":...,"pinned":...}.
func (r *record) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"pair":`)
	out.String(r.Pair)
	out.RawString(`,"pinned":`)
	if r.Pinned == nil {
		out.RawString("null")
	} else {
		out.String(*r.Pinned)
	}
	out.RawByte('}')
}

// UnmarshalEasyJSON reads a record, skipping unknown keys. Non-string values
// for known keys leave the field empty.
func (r *record) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "pair":
			r.Pair = stringOrSkip(in)
		case "pinned":
			v := stringOrSkip(in)
			if v != "" {
				r.Pinned = &v
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// stringOrSkip reads a string value; any other value kind is skipped and
// yields "".
func stringOrSkip(in *jlexer.Lexer) string {
	raw := in.Raw()
	if len(raw) < 2 || raw[0] != '"' {
		return ""
	}
	sub := jlexer.Lexer{Data: raw}
	s := sub.String()
	if sub.Error() != nil {
		return ""
	}
	return s
}
