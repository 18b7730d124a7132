// Package monitoring turns a drill session into a small web server, so that
// progress, results, and the process itself can be watched from a browser
// while a practice run is going.
package monitoring

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/monitoring/web"
	"github.com/drillab/kata/recording"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResultReader reads recorded drill results back for the results endpoint.
// *recording.SQLiteReader satisfies it.
type ResultReader interface {
	Query(
		ctx context.Context,
		tableName string,
		params recording.QueryParams,
	) ([]any, int, error)
}

// Monitor serves a drill session over HTTP. It exposes the registry, runs
// drills on demand, and reports progress and process resources.
type Monitor struct {
	registry   *drill.Registry
	runner     *drill.Runner
	reader     ResultReader
	portNumber int

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRegistry registers the drill registry to serve.
func (m *Monitor) RegisterRegistry(reg *drill.Registry) {
	m.registry = reg
}

// RegisterRunner registers the runner that executes drills on demand.
func (m *Monitor) RegisterRunner(r *drill.Runner) {
	m.runner = r
}

// RegisterResultReader registers the reader used by the results endpoint.
func (m *Monitor) RegisterResultReader(r ResultReader) {
	m.reader = r
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        xid.New().String(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server and returns the port it
// listens on.
func (m *Monitor) StartServer() int {
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(m.portNumber))
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(os.Stderr,
		"Monitoring drill session with http://localhost:%d\n", port)

	go func() {
		err := http.Serve(listener, m.router())
		dieOnErr(err)
	}()

	return port
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	fServer := http.FileServer(web.GetAssets())
	r.HandleFunc("/api/topics", m.listTopics)
	r.HandleFunc("/api/drills", m.listDrills)
	r.HandleFunc("/api/drill/{name:.+}", m.drillDetails)
	r.HandleFunc("/api/run/{name:.+}", m.runDrill)
	r.HandleFunc("/api/results", m.listResults)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.HandleFunc("/api/inspect/{name:.+}", m.inspectDrill)
	r.PathPrefix("/").Handler(fServer)

	return r
}

func (m *Monitor) listTopics(w http.ResponseWriter, _ *http.Request) {
	m.writeJSON(w, m.registry.Topics())
}

type drillRsp struct {
	Name       string `json:"name"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Minutes    int    `json:"minutes"`
	Summary    string `json:"summary"`
}

func drillToRsp(d drill.Drill) drillRsp {
	return drillRsp{
		Name:       d.Name,
		Topic:      d.Topic,
		Difficulty: d.Difficulty,
		Minutes:    d.Minutes,
		Summary:    d.Summary,
	}
}

func (m *Monitor) listDrills(w http.ResponseWriter, r *http.Request) {
	drills := m.registry.All()
	if topic := r.URL.Query().Get("topic"); topic != "" {
		drills = m.registry.ByTopic(topic)
	}

	rsp := make([]drillRsp, 0, len(drills))
	for _, d := range drills {
		rsp = append(rsp, drillToRsp(d))
	}

	m.writeJSON(w, rsp)
}

func (m *Monitor) drillDetails(w http.ResponseWriter, r *http.Request) {
	d, ok := m.findDrillOr404(w, mux.Vars(r)["name"])
	if !ok {
		return
	}

	m.writeJSON(w, drillToRsp(d))
}

func (m *Monitor) runDrill(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if _, ok := m.findDrillOr404(w, name); !ok {
		return
	}

	result, err := m.runner.RunDrill(name)
	dieOnErr(err)

	m.writeJSON(w, result)
}

func (m *Monitor) listResults(w http.ResponseWriter, r *http.Request) {
	if m.reader == nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "no result database attached")
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Error: %s", err)
			return
		}
		limit = n
	}

	results, total, err := m.reader.Query(
		r.Context(), drill.ResultTable,
		recording.QueryParams{OrderBy: "RunAt DESC", Limit: limit})
	dieOnErr(err)

	m.writeJSON(w, map[string]any{
		"total":   total,
		"results": results,
	})
}

func (m *Monitor) inspectDrill(w http.ResponseWriter, r *http.Request) {
	d, ok := m.findDrillOr404(w, mux.Vars(r)["name"])
	if !ok {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(d)
	serializer.SetMaxDepth(1)

	dieOnErr(serializer.Serialize(w))
}

func (m *Monitor) findDrillOr404(
	w http.ResponseWriter,
	name string,
) (drill.Drill, bool) {
	d, ok := m.registry.Lookup(name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "Drill not found")
	}

	return d, ok
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.writeJSON(w, m.progressBars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	m.writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	m.writeJSON(w, prof)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
