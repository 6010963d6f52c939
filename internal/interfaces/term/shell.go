// Package term implementa la interfaz interactiva de la terminal de venta:
// la puerta de identidad, el asistente de configuración inicial y el bucle
// de vistas. Es la única capa que imprime; toda la regla vive en application.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/nexus-pos/internal/application/assistant"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/application/onboarding"
	"github.com/jhoicas/nexus-pos/internal/application/pos"
	"github.com/jhoicas/nexus-pos/internal/application/session"
	"github.com/jhoicas/nexus-pos/internal/application/usecase"
	"github.com/jhoicas/nexus-pos/internal/domain/cart"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/sessionstore"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// Shell estado completo de la terminal interactiva.
type Shell struct {
	session   *session.UseCase
	flow      *onboarding.Flow
	nav       *navigation.Controller
	catalog   *pos.Catalog
	cart      *cart.Cart
	checkout  *pos.Checkout
	assistant *assistant.Assistant
	products  *usecase.ProductUseCase
	staff     *usecase.StaffUseCase
	reports   *usecase.ReportsUseCase
	dashboard *usecase.DashboardUseCase
	store     *sessionstore.Store

	timeout time.Duration
	in      *bufio.Reader
	out     io.Writer
	log     *logger.Logger
}

// Deps dependencias de la terminal, cableadas en cmd/pos.
type Deps struct {
	Session   *session.UseCase
	Flow      *onboarding.Flow
	Nav       *navigation.Controller
	Catalog   *pos.Catalog
	Cart      *cart.Cart
	Checkout  *pos.Checkout
	Assistant *assistant.Assistant
	Products  *usecase.ProductUseCase
	Staff     *usecase.StaffUseCase
	Reports   *usecase.ReportsUseCase
	Dashboard *usecase.DashboardUseCase
	Store     *sessionstore.Store
	Timeout   time.Duration
	In        io.Reader
	Out       io.Writer
	Log       *logger.Logger
}

// NewShell construye la terminal.
func NewShell(d Deps) *Shell {
	return &Shell{
		session:   d.Session,
		flow:      d.Flow,
		nav:       d.Nav,
		catalog:   d.Catalog,
		cart:      d.Cart,
		checkout:  d.Checkout,
		assistant: d.Assistant,
		products:  d.Products,
		staff:     d.Staff,
		reports:   d.Reports,
		dashboard: d.Dashboard,
		store:     d.Store,
		timeout:   d.Timeout,
		in:        bufio.NewReader(d.In),
		out:       d.Out,
		log:       d.Log,
	}
}

func (s *Shell) cartTotals() cart.Totals {
	return cart.ComputeTotals(s.cart)
}

// callCtx todo acceso al backend sale con un plazo acotado.
func (s *Shell) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// Run arranca la terminal: restaura la sesión, pasa la puerta de identidad
// si hace falta, corre la configuración inicial cuando está armada y entra
// al bucle de vistas. Devuelve nil cuando el usuario sale.
func (s *Shell) Run(ctx context.Context) error {
	profile, armed, err := s.session.Restore()
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
	}
	if profile != nil {
		s.printf("Sesión restaurada: %s (%s)\n", profile.Name, profile.Role)
	}

	for {
		if s.session.Current() == nil {
			ok, err := s.gate(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			done, err := s.store.OnboardingComplete()
			if err != nil {
				return err
			}
			armed = !done
		}

		if armed {
			if err := s.wizard(ctx); err != nil {
				return err
			}
			armed = false
		} else {
			callCtx, cancel := s.callCtx(ctx)
			if err := s.catalog.Refresh(callCtx); err != nil {
				s.printf("Aviso: no se pudo descargar el catálogo (%v)\n", err)
			}
			cancel()
		}

		quit, err := s.viewLoop(ctx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		// sign-out: vuelta a la puerta de identidad
	}
}

// ── Puerta de identidad ───────────────────────────────────────────────────────

// gate resuelve al visitante en una sesión por uno de los tres caminos.
// Devuelve false si el usuario elige salir.
func (s *Shell) gate(ctx context.Context) (bool, error) {
	s.printf("\n== NexusRetail POS ==\n")
	for {
		s.printf("\n1) Ingresar con token federado\n2) Ingresar como administrador\n3) Continuar como invitado\n4) Salir\n")
		choice, err := readLine(s.in, s.out, "> ")
		if err != nil {
			return false, err
		}
		switch choice {
		case "1":
			token, err := readLine(s.in, s.out, "Token de identidad: ")
			if err != nil {
				return false, err
			}
			callCtx, cancel := s.callCtx(ctx)
			profile, err := s.session.LoginFederated(callCtx, token)
			cancel()
			if err != nil {
				s.printf("No se pudo iniciar sesión: token inválido\n")
				continue
			}
			if profile.Degraded {
				s.printf("Sin conexión con el servidor: sesión local con rol %s\n", profile.Role)
			}
			s.printf("Bienvenido, %s (%s)\n", profile.Name, profile.Role)
			return true, nil

		case "2":
			user, err := readLine(s.in, s.out, "Usuario: ")
			if err != nil {
				return false, err
			}
			pass, err := readSecret(s.in, s.out, "Contraseña: ")
			if err != nil {
				return false, err
			}
			callCtx, cancel := s.callCtx(ctx)
			profile, err := s.session.LoginAdmin(callCtx, user, pass)
			cancel()
			if err != nil {
				s.printf("Credenciales rechazadas\n")
				continue
			}
			s.printf("Bienvenido, %s (%s)\n", profile.Name, profile.Role)
			return true, nil

		case "3":
			profile, err := s.session.LoginGuest()
			if err != nil {
				return false, err
			}
			s.printf("Sesión de invitado iniciada (%s)\n", profile.Role)
			return true, nil

		case "4", "salir":
			return false, nil

		default:
			s.printf("Opción desconocida\n")
		}
	}
}

// ── Configuración inicial ─────────────────────────────────────────────────────

// wizard corre la secuencia modal de cuatro pasos. Bloquea el resto de la
// aplicación hasta completarse.
func (s *Shell) wizard(ctx context.Context) error {
	s.printf("\n== Configuración inicial (paso %d de 4) ==\n", s.flow.Step())

	for !s.flow.Completed() {
		switch s.flow.Step() {
		case onboarding.StepStoreSetup:
			name, err := readLine(s.in, s.out, "Nombre de la tienda: ")
			if err != nil {
				return err
			}
			if err := s.flow.SubmitStoreConfig(name); err != nil {
				s.printf("Nombre inválido, inténtalo de nuevo\n")
			}

		case onboarding.StepImportStock:
			s.printf("Importando stock inicial... ")
			if err := s.flow.RunImport(ctx); err != nil {
				return err
			}
			s.printf("listo\n")

		case onboarding.StepConnectLegacy:
			s.printf("Sincronizando con el sistema legado... ")
			if err := s.flow.RunLegacySync(ctx); err != nil {
				return err
			}
			s.printf("listo\n")

		case onboarding.StepDone:
			callCtx, cancel := s.callCtx(ctx)
			err := s.flow.Complete(callCtx)
			cancel()
			if err != nil {
				return err
			}
			s.printf("Configuración completada.\n")
		}
	}
	return nil
}

// ── Bucle de vistas ───────────────────────────────────────────────────────────

// viewLoop renderiza la vista activa y despacha comandos hasta que el usuario
// sale (true) o cierra sesión (false).
func (s *Shell) viewLoop(ctx context.Context) (bool, error) {
	s.render(ctx)
	for {
		line, err := readLine(s.in, s.out, fmt.Sprintf("\n[%s] > ", s.nav.Active()))
		if err != nil {
			if err == io.EOF {
				return true, nil
			}
			return false, err
		}
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "salir", "exit", "quit":
			s.printf("Hasta luego\n")
			return true, nil

		case "cerrar-sesion", "logout":
			if err := s.session.SignOut(); err != nil {
				s.printf("Error al cerrar sesión: %v\n", err)
				continue
			}
			s.cart.Clear()
			s.catalog.Invalidate()
			s.printf("Sesión cerrada\n")
			return false, nil

		case "ir":
			if len(args) == 0 {
				s.printf("Uso: ir <vista>\n")
				continue
			}
			if !s.nav.Navigate(navigation.View(args[0])) {
				s.printf("Vista desconocida: %s\n", args[0])
				continue
			}
			s.render(ctx)

		case "vistas":
			for _, v := range navigation.Views {
				s.printf("  %s\n", v)
			}

		case "ayuda", "help":
			s.printHelp()

		default:
			s.dispatch(ctx, cmd, args, line)
		}
	}
}

func (s *Shell) printHelp() {
	s.printf("Comandos globales: ir <vista>, vistas, ayuda, cerrar-sesion, salir\n")
	switch s.nav.Active() {
	case navigation.ViewPOS:
		s.printf("Venta: agregar <sku> [cantidad], buscar <texto>, carrito, cobrar, vaciar\n")
	case navigation.ViewChat:
		s.printf("Chat: cualquier otro texto se envía al asistente\n")
	case navigation.ViewInventory:
		s.printf("Inventario: stock <sku> <cantidad>, prediccion <sku>\n")
	case navigation.ViewAddProduct:
		s.printf("Alta: nuevo (inicia el formulario)\n")
	case navigation.ViewStaff:
		s.printf("Personal: alta\n")
	case navigation.ViewSuppliers:
		s.printf("Proveedores: alta\n")
	}
}
