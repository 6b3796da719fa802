package integration_test

const (
	TestMovieName        = "Dune"
	TestMovieDescription = "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset."
	TestMovieDuration    = 155
	TestMoviePrice       = "12.5"
)
