package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/dataprovider/component"
)

// Summary prints what the application started with.
type Summary struct {
	serviceName     string
	version         string
	instanceID      string
	startupDuration time.Duration
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version, instanceID string) *Summary {
	return &Summary{serviceName: serviceName, version: version, instanceID: instanceID}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Write prints the summary to w, including descriptions and live health of
// every component in registry.
func (s *Summary) Write(w io.Writer, registry *component.Registry) {
	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n", s.serviceName, s.version, s.startupDuration.Seconds())
	fmt.Fprintf(w, "   instance %s\n\n", s.instanceID)

	if registry == nil {
		fmt.Fprintf(w, "   └── No components registered\n\n")
		return
	}
	components := registry.All()
	if len(components) == 0 {
		fmt.Fprintf(w, "   └── No components registered\n\n")
		return
	}

	fmt.Fprintf(w, "📦 Components\n")
	for i, c := range components {
		d := describe(c)
		fmt.Fprintf(w, "   %s %s [%s]", treePrefix(i, len(components)), d.Name, d.Type)
		if d.Details != "" {
			fmt.Fprintf(w, ": %s", d.Details)
		}
		fmt.Fprintln(w)
	}

	health := registry.HealthAll(context.Background())
	fmt.Fprintf(w, "\n🏥 Health Check\n")
	healthy := 0
	for i, h := range health {
		msg := ""
		if h.Message != "" {
			msg = fmt.Sprintf(" (%s)", h.Message)
		}
		fmt.Fprintf(w, "   %s %s %s: %s%s\n", treePrefix(i, len(health)), healthStatusIcon(h.Status), h.Name, strings.ToLower(string(h.Status)), msg)
		if h.Status == component.StatusHealthy {
			healthy++
		}
	}
	if healthy == len(health) {
		fmt.Fprintf(w, "\n✅ All components healthy (%d/%d)\n\n", healthy, len(health))
	} else {
		fmt.Fprintf(w, "\n⚠️  Some components have issues (%d/%d healthy)\n\n", healthy, len(health))
	}
}

func describe(c component.Component) component.Description {
	d := component.Description{Name: c.Name(), Type: "component"}
	if desc, ok := c.(component.Describable); ok {
		d = desc.Describe()
		if d.Name == "" {
			d.Name = c.Name()
		}
	}
	return d
}

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
