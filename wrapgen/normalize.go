package wrapgen

import "regexp"

// receiverName is prepended to every wrapper signature.
const receiverName = "self"

// arrayAnnot prefixes the documented type of parameters that carried the
// empty-parenthesis array marker in the FRED signature.
const arrayAnnot = "Array-like of "

// parMat matches the empty-parenthesis suffix FRED uses to mark array-like
// parameters, whitespace tolerated: "coords()", "coords ( )".
var parMat = regexp.MustCompile(`\s*\(\s*\)\s*`)

// NormParam is one signature parameter with a call-safe name.
type NormParam struct {
	Raw       string // name as written in the descriptor store
	Name      string // emitted name, array marker stripped
	ArrayLike bool
}

// Annot is the parameter's documentation annotation, empty for plain
// parameters. It never affects the call signature.
func (p NormParam) Annot() string {
	if p.ArrayLike {
		return arrayAnnot
	}
	return ""
}

// NormalizeParams strips array markers from the signature's parameter names
// and prepends the receiver. Names without a marker pass through unchanged;
// this cannot fail.
func NormalizeParams(sig []Param) []NormParam {
	out := make([]NormParam, 0, len(sig)+1)
	out = append(out, NormParam{Raw: receiverName, Name: receiverName})
	for _, p := range sig {
		n := NormParam{Raw: p.Name, Name: p.Name}
		if parMat.MatchString(p.Name) {
			n.Name = parMat.ReplaceAllString(p.Name, "")
			n.ArrayLike = true
		}
		out = append(out, n)
	}
	return out
}
