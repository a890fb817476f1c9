package domain

// Token is a single case-normalized word, or the END marker.
type Token string

// End is the distinguished token denoting sentence termination.
// It is rendered as "END SENTENCE" by presentation layers but kept as a
// period internally so serialized tables read like the printed artifact.
const End Token = "."

// IsEnd reports whether the token is the END marker.
func (t Token) IsEnd() bool {
	return t == End
}

func (t Token) String() string {
	return string(t)
}
