// seed_qa genera el script SQL que puebla los checkpoints de calidad del
// pipeline (uno o más por etapa) y las tareas de cumplimiento recurrentes.
//
// Uso: go run ./cmd/seed_qa
// Escribe: internal/infrastructure/postgres/migrations/002_seed_qa.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type checkpoint struct {
	code     string
	name     string
	stage    string
	required bool
}

// Checkpoints por defecto del pipeline. core_temp es el único con derivación
// especial de resultado (lecturas de sondas contra mínimos configurados).
var checkpoints = []checkpoint{
	{"raw_material_check", "Inspección de materia prima", "preparation", true},
	{"equipment_sanitation", "Sanitización de equipos", "preparation", true},
	{"mix_homogeneity", "Homogeneidad de la mezcla", "mixing", true},
	{"cure_distribution", "Distribución de la sal de cura", "mixing", true},
	{"marination_time", "Tiempo de marinado", "marination", true},
	{"drying_humidity", "Humedad de secado", "drying", true},
	{"core_temp", "Temperatura interna", "drying", true},
	{"package_seal", "Sellado de empaque", "packaging", true},
	{"label_check", "Etiquetado y fechas", "packaging", false},
	{"final_inspection", "Inspección final", "final", true},
}

type task struct {
	name           string
	description    string
	frequencyType  string
	frequencyValue int
}

var tasks = []task{
	{"Hisopado ambiental", "Hisopado de superficies de contacto", "weekly", 1},
	{"Análisis microbiológico", "Muestra de producto a laboratorio externo", "batch_interval", 10},
	{"Calibración de balanzas", "Calibración con pesas patrón", "monthly", 1},
	{"Calibración de termómetros", "Verificación en punto de hielo", "fortnightly", 1},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_qa.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Checkpoints de calidad y tareas de cumplimiento por defecto\n")
	out.WriteString("-- Generado por cmd/seed_qa\n\n")

	out.WriteString("-- 1. Checkpoints de calidad\n")
	for i, cp := range checkpoints {
		fmt.Fprintf(out, "INSERT INTO qa_checkpoints (id, code, name, stage, required, active, display_order)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', '%s', %t, true, %d)\n",
			cp.code, escapeSQL(cp.name), cp.stage, cp.required, i)
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, stage = EXCLUDED.stage, required = EXCLUDED.required;\n")
	}

	out.WriteString("\n-- 2. Tareas de cumplimiento\n")
	for _, t := range tasks {
		fmt.Fprintf(out, "INSERT INTO compliance_tasks (id, name, description, frequency_type, frequency_value, active)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', '%s', %d, true)\n",
			escapeSQL(t.name), escapeSQL(t.description), t.frequencyType, t.frequencyValue)
		out.WriteString("ON CONFLICT (name) DO UPDATE SET frequency_type = EXCLUDED.frequency_type, frequency_value = EXCLUDED.frequency_value;\n")
	}

	fmt.Printf("Generado %s: %d checkpoints, %d tareas\n", outPath, len(checkpoints), len(tasks))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
