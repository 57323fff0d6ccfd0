//go:build rp2040

// services/hal/platform/uart_rp2.go
package platform

import (
	"io"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// DebugUART configures UART1 (Pico: TX GP8, RX GP9) for the diagnostics
// console and returns it as a plain writer.
func DebugUART(baud uint32) (io.Writer, error) {
	uart := uartx.UART1
	err := uart.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       uartx.UART1_TX_PIN,
		RX:       uartx.UART1_RX_PIN,
	})
	if err != nil {
		return nil, err
	}
	return uart, nil
}
