package artic

// Package artic talks to the two remote endpoints of the app: the Art
// Institute of Chicago collection API (artwork metadata and IIIF images) and
// the rating endpoint that accepts a score per artwork.
