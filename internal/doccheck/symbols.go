package doccheck

import (
	"reflect"

	talib "github.com/markcheno/go-talib"

	"github.com/quantcheck/quantcheck/sampledata"
)

// Symbols exposes the non-stdlib packages documentation snippets may
// import. Hand-maintained: extend it when docs start using more of the
// library surface.
var Symbols = map[string]map[string]reflect.Value{
	"github.com/markcheno/go-talib/talib": {
		"Sma":    reflect.ValueOf(talib.Sma),
		"Ema":    reflect.ValueOf(talib.Ema),
		"Wma":    reflect.ValueOf(talib.Wma),
		"Rsi":    reflect.ValueOf(talib.Rsi),
		"Atr":    reflect.ValueOf(talib.Atr),
		"Macd":   reflect.ValueOf(talib.Macd),
		"BBands": reflect.ValueOf(talib.BBands),
		"Mom":    reflect.ValueOf(talib.Mom),
		"Roc":    reflect.ValueOf(talib.Roc),
		"StdDev": reflect.ValueOf(talib.StdDev),
		"Obv":    reflect.ValueOf(talib.Obv),

		"MaType": reflect.ValueOf((*talib.MaType)(nil)),
		"SMA":    reflect.ValueOf(talib.SMA),
		"EMA":    reflect.ValueOf(talib.EMA),
		"WMA":    reflect.ValueOf(talib.WMA),
	},
	"github.com/quantcheck/quantcheck/sampledata/sampledata": {
		"Candle":  reflect.ValueOf((*sampledata.Candle)(nil)),
		"Dataset": reflect.ValueOf((*sampledata.Dataset)(nil)),
		"Meta":    reflect.ValueOf((*sampledata.Meta)(nil)),

		"ByName":    reflect.ValueOf(sampledata.ByName),
		"Names":     reflect.ValueOf(sampledata.Names),
		"BTCDaily":  reflect.ValueOf(sampledata.BTCDaily),
		"ETHHourly": reflect.ValueOf(sampledata.ETHHourly),
	},
}
