//go:build tinygo

// Package logx is the project's line logger: "Info:"/"Warn:" prefixed
// lines, written through fmt on host builds and println on MCU builds.
package logx

func Info(a ...any) { line("Info:", a) }
func Warn(a ...any) { line("Warn:", a) }

// println cannot take a variadic slice, so values are printed one by one.
func line(prefix string, a []any) {
	print(prefix)
	for _, v := range a {
		print(" ")
		switch x := v.(type) {
		case string:
			print(x)
		case int:
			print(x)
		case int16:
			print(x)
		case uint8:
			print(x)
		case uint32:
			print(x)
		case bool:
			print(x)
		case error:
			print(x.Error())
		case interface{ String() string }:
			print(x.String())
		default:
			print("?")
		}
	}
	println()
}
