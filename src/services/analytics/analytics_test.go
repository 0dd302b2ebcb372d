package analytics

import (
	"fmt"
	"testing"

	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRegistries() Registries {
	return Registries{
		Activities: []models.CheckInActivity{
			testutil.Activity("a1", "A", "l1", "science", 0),
			testutil.Activity("a2", "B", "l2", "art", 0),
			testutil.Activity("a3", "C", "missing", "art", 0),
		},
		Locations: []models.CheckInLocation{
			{LocationID: "l1", Name: "อาคาร 1"},
			{LocationID: "l2", Name: "ลานกิจกรรม"},
		},
		Schools: []models.School{
			{SchoolID: "s1", SchoolName: "โรงเรียนหนึ่ง", Cluster: "north"},
			{SchoolID: "s2", SchoolName: "โรงเรียนสอง", Cluster: "south"},
		},
		Users: []models.User{
			{UserID: "u1", SchoolID: "s1"},                   // north ผ่านโรงเรียน
			{UserID: "u2", SchoolID: "s2", Cluster: "north"}, // north ตรง ๆ ทับค่าของโรงเรียน
			{UserID: "u3", SchoolID: "s2"},                   // south
			{UserID: "u4"},                                   // ไม่มีโรงเรียน
		},
	}
}

func fixtureLogs() []models.CheckInLog {
	return []models.CheckInLog{
		testutil.LogAt("u1", "a1", "อาคาร 1", "2024-01-01T08:10:00"),
		testutil.LogAt("u1", "a2", "ลานกิจกรรม", "2024-01-01T13:00:00"),
		testutil.LogAt("u2", "a1", "อาคาร 1", "2024-01-01T08:40:00"),
		testutil.LogAt("u3", "a1", "อาคาร 1", "2024-01-01T11:59:59"),
		testutil.LogAt("u4", "a2", "ลานกิจกรรม", "2024-01-01T12:00:00"),
		testutil.LogAt("u5", "a3", "", "not-a-date"),
	}
}

func TestFilterLogs(t *testing.T) {
	reg := fixtureRegistries()
	logs := fixtureLogs()

	t.Run("AllEqualsNoFilter", func(t *testing.T) {
		all := FilterLogs(logs, models.AnalyticsFilter{Cluster: models.FilterAll, Time: models.FilterAll}, reg)
		none := FilterLogs(logs, models.AnalyticsFilter{}, reg)

		assert.Equal(t, logs, all)
		assert.Equal(t, none, all)
	})

	t.Run("ClusterDirectAndViaSchool", func(t *testing.T) {
		north := FilterLogs(logs, models.AnalyticsFilter{Cluster: "north"}, reg)
		var users []string
		for _, l := range north {
			users = append(users, l.UserID)
		}
		assert.Equal(t, []string{"u1", "u1", "u2"}, users)

		south := FilterLogs(logs, models.AnalyticsFilter{Cluster: "south"}, reg)
		require.Len(t, south, 1)
		assert.Equal(t, "u3", south[0].UserID)
	})

	t.Run("MorningAfternoonPartition", func(t *testing.T) {
		morning := FilterLogs(logs, models.AnalyticsFilter{Time: models.TimeMorning}, reg)
		afternoon := FilterLogs(logs, models.AnalyticsFilter{Time: models.TimeAfternoon}, reg)

		// log ที่อ่านเวลาไม่ได้ไม่อยู่ทั้งสองฝั่ง
		assert.Len(t, morning, 3)
		assert.Len(t, afternoon, 2)
		seen := map[string]int{}
		for _, l := range append(morning, afternoon...) {
			seen[l.CheckInID]++
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, id)
		}
		assert.Len(t, seen, len(logs)-1)
	})

	t.Run("ZonedTimestampUsesBangkokHour", func(t *testing.T) {
		zoned := []models.CheckInLog{
			testutil.Log("u1", "a1", "2024-01-01T03:00:00Z"), // 10:00 Bangkok
			testutil.Log("u1", "a1", "2024-01-01T05:30:00Z"), // 12:30 Bangkok
		}
		morning := FilterLogs(zoned, models.AnalyticsFilter{Time: models.TimeMorning}, reg)
		require.Len(t, morning, 1)
		assert.Equal(t, "2024-01-01T03:00:00Z", morning[0].Timestamp)
	})

	t.Run("CombinedFilters", func(t *testing.T) {
		got := FilterLogs(logs, models.AnalyticsFilter{Cluster: "north", Time: models.TimeAfternoon}, reg)
		require.Len(t, got, 1)
		assert.Equal(t, "a2", got[0].ActivityID)
	})
}

func TestComputeOverview(t *testing.T) {
	reg := fixtureRegistries()

	t.Run("UniqueUsersAndTopActivities", func(t *testing.T) {
		ov := ComputeOverview(fixtureLogs(), reg)

		assert.Equal(t, 6, ov.TotalCheckIns)
		assert.Equal(t, 5, ov.UniqueUsers)
		require.Len(t, ov.TopActivities, 3)
		assert.Equal(t, models.TopActivity{ActivityID: "a1", Name: "A", LocationName: "อาคาร 1", Count: 3}, ov.TopActivities[0])
		assert.Equal(t, "B", ov.TopActivities[1].Name)
		assert.Equal(t, 2, ov.TopActivities[1].Count)
		assert.Equal(t, UnknownLabel, ov.TopActivities[2].LocationName)
	})

	t.Run("DuplicateCheckInsCountOnce", func(t *testing.T) {
		logs := []models.CheckInLog{
			testutil.Log("u1", "a1", "2024-01-01T08:00:00"),
			testutil.Log("u1", "a1", "2024-01-01T08:05:00"),
			testutil.Log("u1", "a2", "2024-01-01T09:00:00"),
		}
		ov := ComputeOverview(logs, reg)
		assert.Equal(t, 3, ov.TotalCheckIns)
		assert.Equal(t, 1, ov.UniqueUsers)
	})

	t.Run("TopActivitiesRanking", func(t *testing.T) {
		r := Registries{Activities: []models.CheckInActivity{
			testutil.Activity("b", "B", "", "", 0),
			testutil.Activity("a", "A", "", "", 0),
		}}
		logs := []models.CheckInLog{
			testutil.Log("u1", "a", "2024-01-01T08:00:00"),
			testutil.Log("u2", "a", "2024-01-01T08:00:00"),
			testutil.Log("u3", "a", "2024-01-01T08:00:00"),
			testutil.Log("u1", "b", "2024-01-01T08:00:00"),
		}
		ov := ComputeOverview(logs, r)
		require.Len(t, ov.TopActivities, 2)
		assert.Equal(t, "A", ov.TopActivities[0].Name)
		assert.Equal(t, 3, ov.TopActivities[0].Count)
		assert.Equal(t, "B", ov.TopActivities[1].Name)
		assert.Equal(t, 1, ov.TopActivities[1].Count)
	})

	t.Run("TiesKeepRegistryOrderAndLimit", func(t *testing.T) {
		r := Registries{}
		for i := 0; i < 12; i++ {
			r.Activities = append(r.Activities, testutil.Activity(fmt.Sprintf("a%02d", i), fmt.Sprintf("N%02d", i), "", "", 0))
		}
		ov := ComputeOverview(nil, r)
		require.Len(t, ov.TopActivities, TopActivitiesLimit)
		for i, a := range ov.TopActivities {
			assert.Equal(t, fmt.Sprintf("a%02d", i), a.ActivityID)
		}
	})

	t.Run("UtilizationFromCapacity", func(t *testing.T) {
		r := fixtureRegistries()
		r.Activities[0].Capacity = 10
		r.Activities[1].Capacity = 10
		ov := ComputeOverview(fixtureLogs(), r)
		assert.Equal(t, 20, ov.TotalCapacity)
		assert.InDelta(t, 30.0, ov.Utilization, 1e-9)
	})

	t.Run("UtilizationFromRegisteredUsers", func(t *testing.T) {
		ov := ComputeOverview(fixtureLogs(), reg)
		// ผู้ใช้ไม่ซ้ำ 5 คน / ลงทะเบียน 4 คน
		assert.InDelta(t, 125.0, ov.Utilization, 1e-9)
	})

	t.Run("UtilizationGuardsZeroUsers", func(t *testing.T) {
		ov := ComputeOverview([]models.CheckInLog{testutil.Log("u1", "a1", "2024-01-01T08:00:00")}, Registries{})
		assert.InDelta(t, 100.0, ov.Utilization, 1e-9)
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		ov := ComputeOverview(nil, Registries{})
		assert.Equal(t, 0, ov.TotalCheckIns)
		assert.Equal(t, 0, ov.UniqueUsers)
		assert.Equal(t, 0.0, ov.Utilization)
		assert.NotNil(t, ov.TopActivities)
		assert.Empty(t, ov.TopActivities)
	})
}

func TestComputeSchoolStats(t *testing.T) {
	reg := fixtureRegistries()

	t.Run("UniqueParticipantsPerSchool", func(t *testing.T) {
		stats := ComputeSchoolStats(fixtureLogs(), reg)

		require.Len(t, stats, 3)
		// u4 ไม่มีโรงเรียน และ u5 ไม่อยู่ในรายชื่อผู้ใช้ จึงรวมอยู่ในกลุ่มเดียวกัน
		assert.Equal(t, "โรงเรียนสอง", stats[0].SchoolName)
		assert.Equal(t, 2, stats[0].Count)
		assert.Equal(t, NoSchoolLabel, stats[1].SchoolName)
		assert.Equal(t, 2, stats[1].Count)
		assert.Equal(t, "โรงเรียนหนึ่ง", stats[2].SchoolName)
		assert.Equal(t, 1, stats[2].Count)
		assert.Equal(t, 2, stats[2].TotalCheckIns)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		logs := []models.CheckInLog{
			testutil.Log("u1", "late", "2024-01-01T15:00:00"),
			testutil.Log("u1", "early", "2024-01-01T08:00:00"),
		}
		stats := ComputeSchoolStats(logs, reg)

		require.Len(t, stats, 1)
		require.Len(t, stats[0].Participants, 1)
		p := stats[0].Participants[0]
		assert.Equal(t, "2024-01-01T08:00:00", p.LastSeen)
		assert.Equal(t, "activity-early", p.LastActivity)
		assert.Equal(t, "name-u1", p.Name)
	})

	t.Run("UnresolvedSchoolUsesID", func(t *testing.T) {
		r := Registries{Users: []models.User{{UserID: "x", SchoolID: "s404"}}}
		stats := ComputeSchoolStats([]models.CheckInLog{testutil.Log("x", "a1", "2024-01-01T08:00:00")}, r)
		require.Len(t, stats, 1)
		assert.Equal(t, "s404", stats[0].SchoolName)
	})

	t.Run("TopFifteen", func(t *testing.T) {
		r := Registries{}
		var logs []models.CheckInLog
		for i := 0; i < 20; i++ {
			id := fmt.Sprintf("s%02d", i)
			r.Schools = append(r.Schools, models.School{SchoolID: id, SchoolName: id})
			// โรงเรียนลำดับหลังมีคนมากกว่า
			for j := 0; j <= i; j++ {
				uid := fmt.Sprintf("%s-u%02d", id, j)
				r.Users = append(r.Users, models.User{UserID: uid, SchoolID: id})
				logs = append(logs, testutil.Log(uid, "a1", "2024-01-01T08:00:00"))
			}
		}
		stats := ComputeSchoolStats(logs, r)
		require.Len(t, stats, TopSchoolsLimit)
		assert.Equal(t, "s19", stats[0].SchoolName)
		assert.Equal(t, 20, stats[0].Count)
		assert.Equal(t, "s05", stats[14].SchoolName)
	})
}

func TestComputeLocationHotspots(t *testing.T) {
	hot := ComputeLocationHotspots(fixtureLogs())

	require.Len(t, hot, 3)
	assert.Equal(t, models.LabelCount{Label: "อาคาร 1", Count: 3}, hot[0])
	assert.Equal(t, models.LabelCount{Label: "ลานกิจกรรม", Count: 2}, hot[1])
	assert.Equal(t, models.LabelCount{Label: UnknownLabel, Count: 1}, hot[2])

	var many []models.CheckInLog
	for i := 0; i < 12; i++ {
		many = append(many, testutil.LogAt("u1", "a1", fmt.Sprintf("L%02d", i), "2024-01-01T08:00:00"))
	}
	assert.Len(t, ComputeLocationHotspots(many), TopHotspotsLimit)
	assert.Empty(t, ComputeLocationHotspots(nil))
}

func TestComputeTimeline(t *testing.T) {
	timeline := ComputeTimeline(fixtureLogs())

	assert.Equal(t, []models.LabelCount{
		{Label: "08:00", Count: 2},
		{Label: "11:00", Count: 1},
		{Label: "12:00", Count: 1},
		{Label: "13:00", Count: 1},
	}, timeline)
}

func TestBuildReport(t *testing.T) {
	reg := fixtureRegistries()
	logs := fixtureLogs()

	all := BuildReport(logs, models.AnalyticsFilter{Cluster: models.FilterAll, Time: models.FilterAll}, reg)
	none := BuildReport(logs, models.AnalyticsFilter{}, reg)

	assert.Equal(t, all.Filter, none.Filter)
	assert.Equal(t, all.Overview, none.Overview)
	assert.Equal(t, all.Schools, none.Schools)
	assert.Equal(t, all.Hotspots, none.Hotspots)
	assert.Equal(t, all.Timeline, none.Timeline)
	assert.Equal(t, models.FilterAll, none.Filter.Cluster)

	north := BuildReport(logs, models.AnalyticsFilter{Cluster: "north"}, reg)
	assert.Equal(t, 3, north.Overview.TotalCheckIns)
	assert.Equal(t, 2, north.Overview.UniqueUsers)
}
