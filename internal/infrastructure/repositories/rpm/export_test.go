package rpm

// ZipChangelog exports zipChangelog for testing.
var ZipChangelog = zipChangelog //nolint:gochecknoglobals // test export
