package console

import "testing"

func TestClauseRendering(t *testing.T) {
	child := &clause{}
	child.push(
		typeStatement("id"), value("m3"),
		attribute("visible"), attribute("false"),
	)

	parent := &clause{}
	parent.push(
		value("AWS/EBS"),
		value("VolumeWriteOps"),
		value("VolumeId"),
		value("vol-x"),
		child,
	)

	want := "~(~'AWS/EBS~'VolumeWriteOps~'VolumeId~'vol-x~(id~'m3~visible~false))"
	if got := parent.String(); got != want {
		t.Errorf("clause rendered as\n%s\nwant\n%s", got, want)
	}
}

func TestEmptyClause(t *testing.T) {
	c := &clause{}
	if got := c.String(); got != "~()" {
		t.Errorf("empty clause = %q, want %q", got, "~()")
	}
}
