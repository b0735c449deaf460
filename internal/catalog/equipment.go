package catalog

import "github.com/misterclayt0n/liftlog/internal/models"

// StandardPlates are the per-side plate denominations, heaviest first.
var StandardPlates = []float64{45, 35, 25, 10, 5, 2.5}

func mult(male, female [4]float64) models.Multipliers {
	return models.Multipliers{models.Male: male, models.Female: female}
}

func machine(id, name, target, muscles string, tags []string, stackCap, ratio float64, m models.Multipliers, cues []string, progression string) models.Definition {
	return models.Definition{
		ID: id, Name: name, Target: target, Muscles: muscles, Tags: tags,
		Cues: cues, Progression: progression, Multipliers: m,
		Machine: &models.Machine{StackCap: stackCap, Ratio: ratio},
	}
}

func dumbbell(id, name, target, muscles string, tags []string, m models.Multipliers, cues []string, progression string) models.Definition {
	return models.Definition{
		ID: id, Name: name, Target: target, Muscles: muscles, Tags: tags,
		Cues: cues, Progression: progression, Multipliers: m,
		Dumbbell: &models.Dumbbell{},
	}
}

func barbell(id, name, target, muscles string, tags []string, plates []float64, m models.Multipliers, cues []string, progression string) models.Definition {
	return models.Definition{
		ID: id, Name: name, Target: target, Muscles: muscles, Tags: tags,
		Cues: cues, Progression: progression, Multipliers: m,
		Barbell: &models.Barbell{PlateOptions: plates},
	}
}

var curlPlates = []float64{25, 10, 5, 2.5}

var equipment = []models.Definition{
	// Cardio.
	{ID: "cardio_running", Name: "Running", Target: "Cardio", Tags: []string{"Cardio", "Full Body"}, Emoji: "🏃", Cardio: &models.Cardio{Group: "running"}},
	{ID: "cardio_swimming", Name: "Swimming", Target: "Cardio", Tags: []string{"Cardio", "Full Body"}, Emoji: "🏊", Cardio: &models.Cardio{Group: "swimming"}},

	// Machines.
	machine("chest_press", "Chest Press", "Chest", "Chest, Triceps, Front Delts", []string{"Push", "Upper", "Full Body"}, 260, 0,
		mult([4]float64{0.3, 0.55, 0.85, 1.15}, [4]float64{0.2, 0.35, 0.55, 0.75}),
		[]string{"Handles mid-chest.", "Elbows ~45°.", "Shoulder blades back."}, "Add weight when you can do 12+ controlled reps."),
	machine("pec_fly", "Pec Fly", "Chest", "Chest, Front Delts", []string{"Push", "Upper"}, 200, 0,
		mult([4]float64{0.2, 0.35, 0.55, 0.8}, [4]float64{0.12, 0.25, 0.4, 0.6}),
		[]string{"Soft bend in elbows.", "Move from shoulders."}, "Increase when 12+ reps feel easy with full ROM."),
	machine("shoulder_press", "Shoulder Press", "Shoulders", "Delts, Triceps", []string{"Push", "Upper", "Full Body"}, 200, 0,
		mult([4]float64{0.2, 0.4, 0.65, 0.95}, [4]float64{0.12, 0.25, 0.4, 0.6}),
		[]string{"Start at ear level.", "Press straight up.", "Brace core."}, "Increase when 10–12 reps feel solid."),
	machine("cable_tricep", "Cable Tricep Push", "Triceps", "Triceps", []string{"Push", "Upper"}, 70, 0.5,
		mult([4]float64{0.25, 0.4, 0.6, 0.85}, [4]float64{0.18, 0.3, 0.45, 0.65}),
		[]string{"Elbows pinned.", "Full extension."}, "Increase when 12+ reps feel clean."),
	machine("lat_pulldown", "Lat Pulldown", "Back", "Lats, Biceps", []string{"Pull", "Upper", "Full Body"}, 250, 0,
		mult([4]float64{0.35, 0.6, 0.9, 1.2}, [4]float64{0.25, 0.4, 0.65, 0.9}),
		[]string{"Pull to clavicle.", "No swinging.", "Back does the work."}, "Add weight when 12+ reps are controlled."),
	machine("seated_row", "Seated Row", "Back", "Back, Biceps", []string{"Pull", "Upper"}, 250, 0,
		mult([4]float64{0.4, 0.65, 1.0, 1.35}, [4]float64{0.28, 0.45, 0.7, 0.95}),
		[]string{"Chest to pad.", "Pull to lower ribs."}, "Progress when all sets are clean."),
	machine("cable_bicep", "Cable Bicep Curl", "Biceps", "Biceps, Forearms", []string{"Pull", "Upper"}, 60, 0.5,
		mult([4]float64{0.15, 0.25, 0.4, 0.55}, [4]float64{0.1, 0.2, 0.3, 0.4}),
		[]string{"Elbows fixed.", "Slow negative."}, "Increase when 12+ strict reps are easy."),
	machine("leg_press", "Leg Press", "Legs", "Quads, Glutes, Hamstrings", []string{"Push", "Legs", "Full Body"}, 700, 0,
		mult([4]float64{1.0, 1.6, 2.3, 3.0}, [4]float64{0.7, 1.1, 1.6, 2.2}),
		[]string{"No knee lockout.", "Controlled depth."}, "Add weight when 15+ reps are strong and safe."),
	machine("leg_extension", "Leg Extension", "Quads", "Quadriceps", []string{"Push", "Legs"}, 200, 0,
		mult([4]float64{0.35, 0.6, 0.9, 1.2}, [4]float64{0.25, 0.45, 0.7, 0.95}),
		[]string{"Align knee with pivot.", "Control descent."}, "Increase when 12–15 reps are easy."),
	machine("leg_curl", "Leg Curl", "Hamstrings", "Hamstrings", []string{"Pull", "Legs"}, 200, 0,
		mult([4]float64{0.35, 0.55, 0.8, 1.05}, [4]float64{0.25, 0.4, 0.6, 0.8}),
		[]string{"Hips down.", "Smooth reps."}, "Increase when reps are controlled."),
	machine("back_extension", "Back Extension", "Lower Back", "Lower Back, Glutes", []string{"Pull", "Legs", "Core"}, 200, 0,
		mult([4]float64{0.35, 0.55, 0.8, 1.05}, [4]float64{0.25, 0.4, 0.6, 0.8}),
		[]string{"Pivot at hips.", "No hyperextension.", "Controlled movement."}, "Increase when 15+ reps feel strong."),
	machine("ab_crunch", "Ab Crunch", "Core", "Abs", []string{"Core", "Full Body"}, 200, 0,
		mult([4]float64{0.3, 0.5, 0.75, 1.0}, [4]float64{0.2, 0.35, 0.55, 0.75}),
		[]string{"Ribs to pelvis.", "Exhale."}, "Increase when 20+ reps are clean."),
	machine("hip_abduction", "Hip Abduction", "Glutes", "Glutes, Hip Abductors", []string{"Push", "Legs"}, 200, 0,
		mult([4]float64{0.3, 0.5, 0.75, 1.0}, [4]float64{0.25, 0.45, 0.7, 0.95}),
		[]string{"Press knees out.", "Control the return.", "Don't lean forward."}, "Add weight when 15+ reps feel controlled."),
	machine("hip_adduction", "Hip Adduction", "Inner Thighs", "Adductors, Inner Thighs", []string{"Push", "Legs"}, 200, 0,
		mult([4]float64{0.3, 0.5, 0.75, 1.0}, [4]float64{0.25, 0.45, 0.7, 0.95}),
		[]string{"Squeeze knees together.", "Controlled movement.", "Don't use momentum."}, "Add weight when 15+ reps feel strong."),
	machine("calf_raise", "Calf Raise", "Calves", "Calves", []string{"Push", "Legs"}, 300, 0,
		mult([4]float64{0.5, 0.8, 1.2, 1.6}, [4]float64{0.35, 0.6, 0.9, 1.2}),
		[]string{"Full stretch at bottom.", "Rise onto toes.", "Squeeze at top."}, "Add weight when 15-20 reps feel easy."),
	machine("smith_machine", "Smith Machine Squat", "Legs", "Quads, Glutes", []string{"Push", "Legs", "Full Body"}, 500, 0,
		mult([4]float64{0.6, 1.0, 1.5, 2.0}, [4]float64{0.4, 0.7, 1.1, 1.5}),
		[]string{"Feet forward.", "Bar on traps.", "Controlled descent."}, "Add weight when 10+ reps are solid."),
	machine("cable_wood_chop", "Cable Wood Chop", "Core", "Obliques, Core, Shoulders", []string{"Core", "Full Body"}, 150, 0.5,
		mult([4]float64{0.2, 0.35, 0.55, 0.75}, [4]float64{0.15, 0.25, 0.4, 0.55}),
		[]string{"Rotate from core.", "Arms extended.", "Control both directions."}, "Increase when 12-15 reps per side feel controlled."),
	machine("preacher_curl", "Preacher Curl", "Biceps", "Biceps, Forearms", []string{"Pull", "Upper"}, 120, 0,
		mult([4]float64{0.2, 0.35, 0.5, 0.7}, [4]float64{0.12, 0.22, 0.35, 0.5}),
		[]string{"Arms flat on pad.", "Full extension at bottom.", "Strict form."}, "Add weight when 10-12 strict reps are easy."),

	// Dumbbells.
	dumbbell("db_bench_press", "Dumbbell Bench Press", "Chest", "Chest, Triceps, Front Delts", []string{"Push", "Upper"},
		mult([4]float64{0.15, 0.25, 0.4, 0.55}, [4]float64{0.1, 0.18, 0.28, 0.38}),
		[]string{"Dumbbells at chest level.", "Press up and slightly in.", "Control the descent."}, "Increase weight when you can do 12 reps with good form."),
	dumbbell("db_row", "Dumbbell Row", "Back", "Back, Biceps", []string{"Pull", "Upper"},
		mult([4]float64{0.2, 0.35, 0.5, 0.7}, [4]float64{0.12, 0.22, 0.35, 0.48}),
		[]string{"Row to hip.", "Elbow stays close.", "Squeeze at top."}, "Add weight when 10-12 reps feel controlled."),
	dumbbell("db_shoulder_press", "Dumbbell Shoulder Press", "Shoulders", "Delts, Triceps", []string{"Push", "Upper"},
		mult([4]float64{0.12, 0.22, 0.35, 0.5}, [4]float64{0.08, 0.15, 0.25, 0.35}),
		[]string{"Start at shoulders.", "Press straight up.", "Control the descent."}, "Increase when 10-12 reps are solid."),
	dumbbell("db_goblet_squat", "Goblet Squat", "Legs", "Quads, Glutes", []string{"Push", "Legs"},
		mult([4]float64{0.25, 0.4, 0.6, 0.8}, [4]float64{0.18, 0.3, 0.45, 0.6}),
		[]string{"Hold at chest.", "Squat deep.", "Drive through heels."}, "Add weight when 15+ reps feel strong."),
	dumbbell("db_lunge", "Dumbbell Lunges", "Legs", "Quads, Glutes, Hamstrings", []string{"Push", "Legs"},
		mult([4]float64{0.15, 0.25, 0.4, 0.55}, [4]float64{0.1, 0.18, 0.28, 0.4}),
		[]string{"Step forward.", "Knee at 90°.", "Push back to start."}, "Increase when all reps are controlled."),
	dumbbell("db_curl", "Dumbbell Curl", "Biceps", "Biceps, Forearms", []string{"Pull", "Upper"},
		mult([4]float64{0.1, 0.18, 0.28, 0.4}, [4]float64{0.06, 0.12, 0.2, 0.28}),
		[]string{"Elbows fixed.", "Curl to shoulder.", "Slow negative."}, "Add weight when 12+ strict reps are easy."),
	dumbbell("db_incline_bench", "Incline Dumbbell Bench", "Chest", "Upper Chest, Front Delts", []string{"Push", "Upper"},
		mult([4]float64{0.12, 0.22, 0.35, 0.5}, [4]float64{0.08, 0.15, 0.25, 0.35}),
		[]string{"Bench at 30-45°.", "Press up and in.", "Control the descent."}, "Add weight when 10-12 reps feel solid."),
	dumbbell("db_lateral_raise", "Lateral Raise", "Shoulders", "Side Delts", []string{"Push", "Upper"},
		mult([4]float64{0.06, 0.12, 0.2, 0.3}, [4]float64{0.04, 0.08, 0.14, 0.22}),
		[]string{"Slight bend in elbows.", "Lift to shoulder height.", "Control down."}, "Increase when 12-15 reps are controlled."),
	dumbbell("db_front_raise", "Front Raise", "Shoulders", "Front Delts", []string{"Push", "Upper"},
		mult([4]float64{0.06, 0.12, 0.2, 0.3}, [4]float64{0.04, 0.08, 0.14, 0.22}),
		[]string{"Arms straight.", "Raise to eye level.", "Controlled movement."}, "Add weight when 12-15 reps feel easy."),
	dumbbell("db_shrug", "Dumbbell Shrug", "Traps", "Traps, Upper Back", []string{"Pull", "Upper"},
		mult([4]float64{0.2, 0.35, 0.5, 0.7}, [4]float64{0.12, 0.22, 0.35, 0.5}),
		[]string{"Shrug straight up.", "Hold at top.", "Control down."}, "Increase when 12+ reps are strong."),
	dumbbell("db_rdl", "Dumbbell Romanian DL", "Hamstrings", "Hamstrings, Glutes, Lower Back", []string{"Pull", "Legs"},
		mult([4]float64{0.2, 0.35, 0.5, 0.7}, [4]float64{0.15, 0.25, 0.4, 0.55}),
		[]string{"Hinge at hips.", "Slight knee bend.", "Feel hamstring stretch."}, "Add weight when 10-12 reps feel controlled."),
	dumbbell("db_hammer_curl", "Hammer Curl", "Biceps", "Biceps, Forearms, Brachialis", []string{"Pull", "Upper"},
		mult([4]float64{0.1, 0.18, 0.28, 0.4}, [4]float64{0.06, 0.12, 0.2, 0.28}),
		[]string{"Palms facing in.", "Curl up.", "Keep elbows still."}, "Increase when 12+ reps are strict."),
	dumbbell("db_tricep_kickback", "Tricep Kickback", "Triceps", "Triceps", []string{"Push", "Upper"},
		mult([4]float64{0.06, 0.12, 0.2, 0.3}, [4]float64{0.04, 0.08, 0.14, 0.22}),
		[]string{"Elbow fixed at side.", "Extend arm back.", "Squeeze at top."}, "Add weight when 12-15 reps feel controlled."),

	// Barbells.
	barbell("bb_squat", "Barbell Squat", "Legs", "Quads, Glutes, Hamstrings", []string{"Push", "Legs"}, StandardPlates,
		mult([4]float64{0.8, 1.2, 1.7, 2.2}, [4]float64{0.5, 0.9, 1.3, 1.7}),
		[]string{"Bar on traps.", "Depth to parallel.", "Drive through heels."}, "Add weight when you hit 8+ reps with good depth."),
	barbell("bb_bench", "Barbell Bench Press", "Chest", "Chest, Triceps, Front Delts", []string{"Push", "Upper"}, StandardPlates,
		mult([4]float64{0.5, 0.8, 1.1, 1.4}, [4]float64{0.25, 0.45, 0.65, 0.85}),
		[]string{"Bar to mid-chest.", "Elbows 45°.", "Feet planted."}, "Increase when you can do 8-10 solid reps."),
	barbell("bb_deadlift", "Barbell Deadlift", "Back", "Back, Glutes, Hamstrings", []string{"Pull", "Legs"}, StandardPlates,
		mult([4]float64{1.0, 1.5, 2.0, 2.5}, [4]float64{0.6, 1.0, 1.4, 1.8}),
		[]string{"Bar over mid-foot.", "Chest up.", "Drive through floor."}, "Add weight when 6-8 reps are strong."),
	barbell("bb_row", "Barbell Row", "Back", "Back, Biceps", []string{"Pull", "Upper"}, StandardPlates,
		mult([4]float64{0.4, 0.65, 0.9, 1.2}, [4]float64{0.25, 0.45, 0.65, 0.85}),
		[]string{"Hinge at hips.", "Row to belly.", "No swinging."}, "Increase when 10+ reps are controlled."),
	barbell("bb_overhead_press", "Overhead Press", "Shoulders", "Delts, Triceps", []string{"Push", "Upper"}, StandardPlates,
		mult([4]float64{0.3, 0.5, 0.7, 0.95}, [4]float64{0.18, 0.3, 0.45, 0.6}),
		[]string{"Bar at clavicle.", "Press straight up.", "Lockout overhead."}, "Add weight when 8-10 reps are solid."),
	barbell("bb_rdl", "Romanian Deadlift", "Hamstrings", "Hamstrings, Glutes, Lower Back", []string{"Pull", "Legs"}, StandardPlates,
		mult([4]float64{0.6, 1.0, 1.4, 1.8}, [4]float64{0.4, 0.7, 1.0, 1.3}),
		[]string{"Hinge at hips.", "Bar close to legs.", "Feel hamstring stretch."}, "Add weight when 8-10 reps feel strong."),
	barbell("bb_front_squat", "Front Squat", "Quads", "Quads, Core, Upper Back", []string{"Push", "Legs"}, StandardPlates,
		mult([4]float64{0.6, 1.0, 1.4, 1.8}, [4]float64{0.4, 0.7, 1.0, 1.3}),
		[]string{"Bar on front delts.", "Elbows high.", "Chest up."}, "Increase when 8+ reps are solid."),
	barbell("bb_sumo_deadlift", "Sumo Deadlift", "Legs", "Glutes, Quads, Hamstrings", []string{"Pull", "Legs"}, StandardPlates,
		mult([4]float64{0.9, 1.4, 1.9, 2.4}, [4]float64{0.55, 0.95, 1.35, 1.75}),
		[]string{"Wide stance.", "Bar over mid-foot.", "Drive through floor."}, "Add weight when 6-8 reps are strong."),
	barbell("bb_close_grip_bench", "Close-Grip Bench", "Triceps", "Triceps, Chest", []string{"Push", "Upper"}, StandardPlates,
		mult([4]float64{0.4, 0.7, 1.0, 1.3}, [4]float64{0.22, 0.4, 0.6, 0.8}),
		[]string{"Hands shoulder-width.", "Elbows in.", "Touch lower chest."}, "Increase when 8-10 reps are controlled."),
	barbell("bb_incline_bench", "Incline Barbell Bench", "Upper Chest", "Upper Chest, Front Delts, Triceps", []string{"Push", "Upper"}, StandardPlates,
		mult([4]float64{0.4, 0.7, 1.0, 1.3}, [4]float64{0.22, 0.4, 0.6, 0.8}),
		[]string{"Bench at 30-45°.", "Bar to upper chest.", "Press straight up."}, "Add weight when 8-10 reps feel solid."),
	barbell("bb_curl", "Barbell Curl", "Biceps", "Biceps, Forearms", []string{"Pull", "Upper"}, curlPlates,
		mult([4]float64{0.2, 0.35, 0.5, 0.7}, [4]float64{0.12, 0.22, 0.35, 0.5}),
		[]string{"Elbows at sides.", "Curl to shoulders.", "Control down."}, "Increase when 10-12 strict reps are easy."),
	barbell("bb_shrug", "Barbell Shrug", "Traps", "Traps, Upper Back", []string{"Pull", "Upper"}, StandardPlates,
		mult([4]float64{0.4, 0.7, 1.0, 1.4}, [4]float64{0.25, 0.45, 0.7, 0.95}),
		[]string{"Shrug straight up.", "Hold at top.", "Don't roll shoulders."}, "Add weight when 12+ reps are strong."),

	// Easter eggs.
	{ID: "kung_fu", Name: "Kung Fu", Target: "Mind", Muscles: "Neo", Tags: []string{"Full Body"}, Emoji: "😎", EasterEgg: &models.EasterEgg{}},
	{ID: "power_up", Name: "Power Up", Target: "Spirit", Muscles: "Saiyan", Tags: []string{"Full Body"}, Emoji: "⚡", EasterEgg: &models.EasterEgg{}},
}
