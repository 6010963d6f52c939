package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	xterm "golang.org/x/term"
)

// Seams de test para no tocar la terminal real.
var (
	readPassword = xterm.ReadPassword
	isTerminal   = xterm.IsTerminal
)

// readLine imprime el prompt y lee una línea, sin el salto final.
func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt lee un entero no negativo.
func readInt(r *bufio.Reader, w io.Writer, prompt string) (int, error) {
	line, err := readLine(r, w, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("cantidad inválida: %q", line)
	}
	return n, nil
}

// parsePositive convierte un token a entero estrictamente positivo.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("cantidad inválida: %q", s)
	}
	return n, nil
}

// readDecimal lee un monto decimal no negativo.
func readDecimal(r *bufio.Reader, w io.Writer, prompt string) (decimal.Decimal, error) {
	line, err := readLine(r, w, prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("monto inválido: %q", line)
	}
	return d, nil
}

// readSecret lee sin eco cuando stdin es una terminal real; en cualquier otro
// caso (tests, pipes) lee una línea normal del mismo reader.
func readSecret(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	secret, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
