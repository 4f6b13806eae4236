package shell

import "io"

// NewCommandRepositoryWithStreams exports a CommandRepository wired to the given streams for testing.
func NewCommandRepositoryWithStreams(
	elevationHelper string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) *CommandRepository {
	repo := NewCommandRepository(elevationHelper)
	repo.stdin = stdin
	repo.stdout = stdout
	repo.stderr = stderr
	return repo
}
