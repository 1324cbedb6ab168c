package session

// WithNow exposes the codec clock override to external tests.
var WithNow = withNow

// DecodeStrict exposes the verifying decode path so tests can assert the
// failure taxonomy behind Decode's empty-session downgrade.
func (c *Codec) DecodeStrict(raw string) (Session, error) {
	return c.decode(raw)
}
