package services

import (
	"testing"
	"time"

	"safetrack-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertServiceSnapshotIsImmutable(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	students := NewStudentService(db, cfg)
	alerts := NewAlertService(db, cfg, nil)

	require.NoError(t, students.Register(newStudent("s1", "Ayesha"), "p1secret"))
	student, err := students.GetByStudentID("s1")
	require.NoError(t, err)

	alert, err := alerts.CreateAlert(student, "need help")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, "Ayesha", alert.StudentName)
	assert.Equal(t, "O+", alert.BloodGroup)
	assert.Equal(t, "Dhanmondi, Dhaka", alert.Location)
	require.Len(t, alert.EmergencyContacts, 1)

	// 档案修改不回溯改变已有警报的快照
	name := "Ayesha Rahman"
	location := "Gulshan, Dhaka"
	_, err = students.UpdateProfile("s1", &StudentUpdate{Name: &name, Location: &location})
	require.NoError(t, err)

	listed, err := alerts.GetAlerts("", "s1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ayesha", listed[0].StudentName)
	assert.Equal(t, "Dhanmondi, Dhaka", listed[0].Location)
}

func TestAlertServiceListingScopeAndOrder(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	students := NewStudentService(db, cfg)
	alerts := NewAlertService(db, cfg, nil)

	require.NoError(t, students.Register(newStudent("s1", "Ayesha"), "p1secret"))
	require.NoError(t, students.Register(newStudent("s2", "Nadia"), "p2secret"))
	s1, err := students.GetByStudentID("s1")
	require.NoError(t, err)
	s2, err := students.GetByStudentID("s2")
	require.NoError(t, err)

	first, err := alerts.CreateAlert(s1, "first")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := alerts.CreateAlert(s1, "second")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = alerts.CreateAlert(s2, "other student")
	require.NoError(t, err)

	// 所有者过滤：只返回s1自己的警报，按创建时间倒序
	own, err := alerts.GetAlerts(models.AlertStatusActive, "s1")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.ID, own[0].ID)
	assert.Equal(t, first.ID, own[1].ID)

	// 无所有者过滤（管理员视角）：返回全部
	all, err := alerts.GetAlerts("", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// 状态过滤
	_, err = alerts.UpdateAlertStatus(first.ID, models.AlertStatusResolved, "admin")
	require.NoError(t, err)

	active, err := alerts.GetAlerts(models.AlertStatusActive, "s1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	resolved, err := alerts.GetAlerts(models.AlertStatusResolved, "s1")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, first.ID, resolved[0].ID)
}

func TestAlertServiceResolveStampsResolution(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	students := NewStudentService(db, cfg)
	alerts := NewAlertService(db, cfg, nil)

	require.NoError(t, students.Register(newStudent("s1", "Ayesha"), "p1secret"))
	s1, err := students.GetByStudentID("s1")
	require.NoError(t, err)

	alert, err := alerts.CreateAlert(s1, "")
	require.NoError(t, err)
	assert.Nil(t, alert.ResolvedAt)

	_, err = alerts.UpdateAlertStatus(alert.ID, models.AlertStatusResolved, "admin")
	require.NoError(t, err)

	listed, err := alerts.GetAlerts(models.AlertStatusResolved, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.AlertStatusResolved, listed[0].Status)
	assert.Equal(t, "admin", listed[0].ResolvedBy)
	require.NotNil(t, listed[0].ResolvedAt)
	assert.WithinDuration(t, time.Now(), *listed[0].ResolvedAt, time.Minute)
}

func TestAlertServiceUpdateFailures(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	alerts := NewAlertService(db, cfg, nil)

	_, err := alerts.UpdateAlertStatus("no-such-id", models.AlertStatusResolved, "admin")
	assert.ErrorIs(t, err, ErrAlertNotFound)

	_, err = alerts.UpdateAlertStatus("whatever", "escalated", "admin")
	assert.ErrorIs(t, err, ErrAlertStatusInvalid)
}

func TestAlertServiceGetActiveAlertsWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	students := NewStudentService(db, cfg)
	alerts := NewAlertService(db, cfg, nil)

	require.NoError(t, students.Register(newStudent("s1", "Ayesha"), "p1secret"))
	s1, err := students.GetByStudentID("s1")
	require.NoError(t, err)

	_, err = alerts.CreateAlert(s1, "")
	require.NoError(t, err)

	// Redis未配置时直接走数据库
	active, err := alerts.GetActiveAlerts()
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
