package customerrors

import "errors"

var (
	ErrEmptyTicker = errors.New("please provide a valid stock ticker")
	ErrNoQuoteData = errors.New("no quote data returned for ticker")
)
