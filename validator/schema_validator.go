package validator

import (
	"github.com/Oudwins/zog"
)

var TickerShape = zog.Shape{
	"Ticker": zog.String().Min(1).Max(16).Required(),
}
