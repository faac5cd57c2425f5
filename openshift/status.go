package openshift

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Status aggregates the deployment state. Sections whose fetch failed are
// left empty.
type Status struct {
	Deployment *DeploymentStatus `json:"deployment,omitempty"`
	Pods       []Pod             `json:"pods"`
	Services   []Service         `json:"services"`
	Routes     []Route           `json:"routes"`
	HPA        *HPAStatus        `json:"hpa,omitempty"`
}

// DeploymentStatus holds replica counts.
type DeploymentStatus struct {
	Name            string `json:"name"`
	Replicas        int32  `json:"replicas"`
	ReadyReplicas   int32  `json:"ready_replicas"`
	UpdatedReplicas int32  `json:"updated_replicas"`
}

// Pod is a pod name and phase.
type Pod struct {
	Name  string `json:"name"`
	Phase string `json:"phase"`
}

// Service is a service name and type.
type Service struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Route is a route name and host.
type Route struct {
	Name string `json:"name"`
	Host string `json:"host"`
}

// HPAStatus describes the first autoscaler in the namespace.
type HPAStatus struct {
	Name            string `json:"name"`
	MinReplicas     int32  `json:"min_replicas"`
	MaxReplicas     int32  `json:"max_replicas"`
	CurrentReplicas int32  `json:"current_replicas"`
	CPUPercent      *int32 `json:"cpu_percent,omitempty"`
}

// object mirrors the parts of the client JSON output that are read.
type object struct {
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Spec struct {
		Replicas    int32  `json:"replicas"`
		Type        string `json:"type"`
		Host        string `json:"host"`
		MinReplicas int32  `json:"minReplicas"`
		MaxReplicas int32  `json:"maxReplicas"`
	} `json:"spec"`
	Status struct {
		Phase                           string `json:"phase"`
		ReadyReplicas                   int32  `json:"readyReplicas"`
		UpdatedReplicas                 int32  `json:"updatedReplicas"`
		CurrentReplicas                 int32  `json:"currentReplicas"`
		CurrentCPUUtilizationPercentage *int32 `json:"currentCPUUtilizationPercentage"`
	} `json:"status"`
}

type objectList struct {
	Items []object `json:"items"`
}

func decodeObject(raw string) (object, error) {
	var o object
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return o, fmt.Errorf("decode output: %w", err)
	}
	return o, nil
}

func decodeList(raw string) ([]object, error) {
	var l objectList
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return l.Items, nil
}

// Render writes the status as tables.
func (s *Status) Render(w io.Writer) {
	if d := s.Deployment; d != nil {
		t := newTable(w, "Deployment: "+d.Name)
		t.AppendHeader(table.Row{"Réplicas deseadas", "Réplicas listas", "Réplicas actualizadas"})
		t.AppendRow(table.Row{d.Replicas, d.ReadyReplicas, d.UpdatedReplicas})
		t.Render()
	}

	t := newTable(w, "Pods")
	t.AppendHeader(table.Row{"Nombre", "Fase"})
	for _, p := range s.Pods {
		t.AppendRow(table.Row{p.Name, p.Phase})
	}
	t.Render()

	t = newTable(w, "Servicios")
	t.AppendHeader(table.Row{"Nombre", "Tipo"})
	for _, svc := range s.Services {
		t.AppendRow(table.Row{svc.Name, svc.Type})
	}
	t.Render()

	t = newTable(w, "Rutas")
	t.AppendHeader(table.Row{"Nombre", "URL"})
	for _, r := range s.Routes {
		t.AppendRow(table.Row{r.Name, "https://" + r.Host})
	}
	t.Render()

	if h := s.HPA; h != nil {
		cpu := "N/A"
		if h.CPUPercent != nil {
			cpu = strconv.Itoa(int(*h.CPUPercent)) + "%"
		}
		t = newTable(w, "Auto-Escalado (HPA)")
		t.AppendHeader(table.Row{"Mín. réplicas", "Máx. réplicas", "Réplicas actuales", "CPU actual"})
		t.AppendRow(table.Row{h.MinReplicas, h.MaxReplicas, h.CurrentReplicas, cpu})
		t.Render()
	}
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s", title)
	return t
}
